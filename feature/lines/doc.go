// Package lines implements the line marker check feature.
//
// It ties the reconcile engine to the document reader/writer and exposes the
// result over HTTP and to the CLI. Documents can come from uploads, from local
// files or from the configured object storage bucket; each is checked on its
// own, so a broken document only fails its own entry in a batch.
//
// # Components
//
//   - Service: checks, plans and fixes documents, alone or in bounded batches.
//   - Handler: exposes the HTTP endpoints.
//   - Feature: registers the feature with the loader.
//
// # HTTP Endpoints
//
//   - POST /lines/check : Checks one or more uploaded documents (multipart field "files").
//   - POST /lines/plan : Returns the fix plan for one document (multipart field "file").
//   - POST /lines/fix : Returns the rewritten document (supports ?missing=&duplicates=).
//   - GET /lines/bucket : Checks the documents under ?prefix= in storage (supports ?fix=true).
package lines
