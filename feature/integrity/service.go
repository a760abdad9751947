package integrity

import (
	"context"

	"line-checker/core/storage"
	"line-checker/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles storage integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	logger  *zap.Logger
}

// NewService creates a new integrity service. folders lists the prefixes that must
// exist in the bucket. client may be nil when storage is disabled.
func NewService(client storage.Client, bucket string, folders []string, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		folders: folders,
		logger:  logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, storage.ErrDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return storage.ErrDisabled
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}
