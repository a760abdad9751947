// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the few operations the bucket batch mode
// needs: checking bucket existence, listing documents under a prefix, downloading
// them and uploading rewritten documents. It supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	if errors.Is(err, storage.ErrDisabled) {
//	    // bucket mode not configured
//	}
//	exists, err := client.BucketExists(ctx, "documents")
package storage
