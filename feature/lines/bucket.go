package lines

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"line-checker/core/document"
	"line-checker/core/reconcile"
	"line-checker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckBucket checks every document stored under prefix, or under the
// configured input prefix when prefix is empty.
func (s *Service) CheckBucket(ctx context.Context, prefix string) ([]BatchItem, error) {
	uploads, err := s.listDocuments(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return s.CheckBatch(ctx, uploads), nil
}

// FixBucket fixes every document stored under prefix and uploads the rewritten
// copies under the configured output prefix. Upload failures are reported per item.
func (s *Service) FixBucket(ctx context.Context, prefix string, opts reconcile.Options) ([]BatchItem, error) {
	if prefix == "" {
		prefix = s.cfg.InputPrefix
	}
	uploads, err := s.listDocuments(ctx, prefix)
	if err != nil {
		return nil, err
	}

	items := s.runBatch(ctx, uploads, func(u Upload, data []byte) BatchItem {
		item := s.fixItem(u.Name, data, opts)
		if item.Fix == nil {
			return item
		}

		key := s.outputKey(prefix, u.Name)
		_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(item.Fix.Document), int64(len(item.Fix.Document)), minio.PutObjectOptions{
			ContentType: document.MIMEType,
		})
		if err != nil {
			item.Error = fmt.Sprintf("failed to upload %s: %v", key, err)
			return item
		}
		item.Output = key
		s.logger.Info("Uploaded fixed document", zap.String("source", u.Name), zap.String("key", key))
		return item
	})

	return items, nil
}

// outputKey places the rewritten copy of an object under the output prefix,
// keeping its folders relative to the folder of the listing prefix so objects
// sharing a base name in different folders never share an output key.
func (s *Service) outputKey(listPrefix, objectKey string) string {
	out := s.cfg.OutputPrefix
	if out != "" && !strings.HasSuffix(out, "/") {
		out += "/"
	}

	rel := objectKey
	if i := strings.LastIndex(listPrefix, "/"); i >= 0 && strings.HasPrefix(objectKey, listPrefix[:i+1]) {
		rel = objectKey[i+1:]
	}

	dir := path.Dir(rel)
	if dir == "." {
		return out + OutputName(path.Base(rel))
	}
	return out + dir + "/" + OutputName(path.Base(rel))
}

// listDocuments returns an upload per document object under prefix, skipping
// folders, other extensions and previously written output.
func (s *Service) listDocuments(ctx context.Context, prefix string) ([]Upload, error) {
	if s.client == nil {
		return nil, storage.ErrDisabled
	}
	if prefix == "" {
		prefix = s.cfg.InputPrefix
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	ext := strings.ToLower(s.cfg.extension())
	var uploads []Upload
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") || !strings.HasSuffix(strings.ToLower(obj.Key), ext) {
			continue
		}
		if s.cfg.OutputPrefix != "" && strings.HasPrefix(obj.Key, s.cfg.OutputPrefix) {
			continue
		}
		uploads = append(uploads, s.objectUpload(obj.Key))
	}

	return uploads, nil
}

func (s *Service) objectUpload(key string) Upload {
	return Upload{
		Name: key,
		Load: func(ctx context.Context) ([]byte, error) {
			obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
			if err != nil {
				return nil, fmt.Errorf("failed to get %s: %w", key, err)
			}
			defer obj.Close()

			data, err := io.ReadAll(obj)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", key, err)
			}
			return data, nil
		},
	}
}
