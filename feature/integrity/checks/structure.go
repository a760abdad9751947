package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"line-checker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckStructure returns the folders that have no object under them.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates an empty folder marker for each missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
