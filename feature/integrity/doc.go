// Package integrity validates the storage layout the bucket mode relies on.
//
// The bucket must hold the folder documents are read from and the folder fixed
// copies are written to. Folders are object prefixes, so a missing folder is
// created by uploading an empty "folder/" marker object.
//
// # HTTP Endpoints
//
//   - GET /integrity/structure : Runs the structure check (supports ?fix=true).
//
// The feature only loads when storage is enabled.
package integrity
