package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"creator-portal-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// StagingPrefix - mọi upload đỗ tạm ở đây trước khi promote về final key
// Scheduled reaper quét prefix này theo tuổi, nên request đứt giữa chừng
// không để lại object mồ côi vĩnh viễn
const StagingPrefix = "tmp/"

// StagingKey sinh object key tạm dưới StagingPrefix
func StagingKey(ext string) string {
	return StagingPrefix + uuid.NewString() + ext
}

// DeleteOutcome phân loại kết quả khi xóa object trên provider
// Caller log kết quả; local state luôn là authoritative
type DeleteOutcome string

const (
	DeleteOutcomeDeleted       DeleteOutcome = "deleted"
	DeleteOutcomeNotFound      DeleteOutcome = "not_found"
	DeleteOutcomeProviderError DeleteOutcome = "provider_error"
)

// DeleteResult là typed result của một remote deletion attempt
type DeleteResult struct {
	Outcome DeleteOutcome
	Detail  string // provider error message, empty nếu ok
}

// MinIOStorage handles file uploads to MinIO
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage khởi tạo MinIO client
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false cho local, true cho production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Kiểm tra bucket có tồn tại không, nếu không thì tạo mới
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload uploads a file to MinIO
// key: đường dẫn file trong bucket (vd: creators/uuid/media/abc.jpg)
// Returns: public URL của object
func (s *MinIOStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	// Format: http://localhost:9000/creator-portal/creators/uuid/media/abc.jpg
	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, key)

	return url, nil
}

// Promote copy object từ staging key sang final key rồi xóa bản staging
// Returns: public URL của final object
func (s *MinIOStorage) Promote(ctx context.Context, srcKey, dstKey string) (string, error) {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: srcKey},
	)
	if err != nil {
		return "", fmt.Errorf("failed to promote object %s: %w", srcKey, err)
	}

	// Best-effort: bản staging còn sót sẽ bị reaper dọn theo tuổi
	if err := s.client.RemoveObject(ctx, s.bucket, srcKey, minio.RemoveObjectOptions{}); err != nil {
		log.Warn().Err(err).Str("key", srcKey).Msg("Failed to remove staging object")
	}

	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, dstKey)
	return url, nil
}

// DeleteObject xóa một object theo public identifier (key)
// Không trả error: mọi failure được encode trong DeleteResult
func (s *MinIOStorage) DeleteObject(ctx context.Context, key string) DeleteResult {
	// Stat trước để phân biệt "not found" với provider failure
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return DeleteResult{Outcome: DeleteOutcomeNotFound}
		}
		return DeleteResult{Outcome: DeleteOutcomeProviderError, Detail: err.Error()}
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return DeleteResult{Outcome: DeleteOutcomeProviderError, Detail: err.Error()}
	}

	return DeleteResult{Outcome: DeleteOutcomeDeleted}
}

// RemoveFolder xóa tất cả objects trong một folder (prefix)
// Dùng khi xóa creator: purge hết media của creator đó
func (s *MinIOStorage) RemoveFolder(ctx context.Context, prefix string) error {
	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectsCh {
		if object.Err != nil {
			return fmt.Errorf("error listing objects: %w", object.Err)
		}

		err := s.client.RemoveObject(ctx, s.bucket, object.Key, minio.RemoveObjectOptions{})
		if err != nil {
			return fmt.Errorf("failed to delete object %s: %w", object.Key, err)
		}
	}

	return nil
}

// RemoveOlderThan xóa objects dưới prefix có LastModified trước cutoff
// Dùng cho scheduled cleanup của orphan uploads
// Returns: số objects đã xóa
func (s *MinIOStorage) RemoveOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error) {
	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	removed := 0
	for object := range objectsCh {
		if object.Err != nil {
			return removed, fmt.Errorf("error listing objects: %w", object.Err)
		}

		if object.LastModified.After(cutoff) {
			continue
		}

		if err := s.client.RemoveObject(ctx, s.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to delete object %s: %w", object.Key, err)
		}
		removed++
	}

	return removed, nil
}
