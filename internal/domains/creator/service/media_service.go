package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"creator-portal-backend/internal/domains/creator/model"
	"creator-portal-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ObjectStore là phần surface của object storage mà media flows dùng
// (*storage.MinIOStorage thỏa mãn interface này)
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Promote(ctx context.Context, srcKey, dstKey string) (string, error)
	DeleteObject(ctx context.Context, key string) storage.DeleteResult
}

// UploadAvatar thay avatar của creator bằng file upload
// Ảnh được normalize (downscale + re-encode) trước khi đẩy lên storage
func (s *creatorService) UploadAvatar(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (*model.Creator, error) {
	creator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.images.ValidateImage(data); err != nil {
		return nil, err
	}
	processed, err := s.images.Normalize(data)
	if err != nil {
		return nil, err
	}
	if len(processed) != len(data) {
		contentType = "image/jpeg"
	}

	// Upload đỗ tạm dưới staging prefix; chỉ promote về final key khi
	// sắp attach. Request đứt ở đây -> object nằm lại tmp/ cho reaper.
	stagingKey := storage.StagingKey(uploadExt(filename, contentType))
	if _, err := s.storage.Upload(ctx, stagingKey, processed, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	key := fmt.Sprintf("creators/%s/avatar-%d%s", id, time.Now().UnixMilli(), uploadExt(filename, contentType))
	url, err := s.storage.Promote(ctx, stagingKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	oldKey := creator.AvatarKey
	creator.SetAvatar(url)

	if err := s.repo.Update(ctx, creator); err != nil {
		// Object đã promote nhưng không attach được: thu hồi ngay vì
		// final key nằm ngoài tầm quét của reaper
		result := s.storage.DeleteObject(ctx, key)
		if result.Outcome != storage.DeleteOutcomeDeleted {
			log.Error().Str("key", key).Str("detail", result.Detail).Msg("Failed to reclaim detached avatar upload")
		}
		return nil, err
	}

	s.invalidateCreatorCache(ctx, id)

	// Avatar cũ là orphan sau khi swap; best-effort xóa luôn
	if oldKey != "" && oldKey != creator.AvatarKey {
		result := s.storage.DeleteObject(ctx, oldKey)
		log.Info().
			Str("key", oldKey).
			Str("outcome", string(result.Outcome)).
			Str("detail", result.Detail).
			Msg("Old avatar cleanup")
	}

	return creator, nil
}

// AddMedia upload một file vào gallery của creator và append vào
// media sequence. Video giữ nguyên bytes; image được normalize trước.
func (s *creatorService) AddMedia(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType, caption string) (*model.Creator, error) {
	creator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(contentType, "image/") {
		if err := s.images.ValidateImage(data); err != nil {
			return nil, err
		}
		processed, err := s.images.Normalize(data)
		if err != nil {
			return nil, err
		}
		if len(processed) != len(data) {
			contentType = "image/jpeg"
		}
		data = processed
	}

	// Staging trước, promote sau - như avatar flow
	stagingKey := storage.StagingKey(uploadExt(filename, contentType))
	if _, err := s.storage.Upload(ctx, stagingKey, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	key := fmt.Sprintf("creators/%s/media/%d%s", id, time.Now().UnixMilli(), uploadExt(filename, contentType))
	url, err := s.storage.Promote(ctx, stagingKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	// Object key là public identifier; fallback khi store không trả key
	mediaID := key
	if mediaID == "" {
		mediaID = model.FallbackMediaID()
	}

	mediaType := model.MediaTypeFor(contentType, url)
	item := model.MediaItem{
		ID:        mediaID,
		Type:      mediaType,
		URL:       url,
		Thumbnail: model.ThumbnailFor(mediaType, url),
		Caption:   caption,
		CreatedAt: time.Now(),
	}

	// Append dưới row lock: upload đồng thời lên cùng creator không mất item
	creator, err = s.repo.MutateMedia(ctx, id, func(c *model.Creator) error {
		return c.AddMedia(item)
	})
	if err != nil {
		// Persist fail sau khi promote: thu hồi ngay, final key nằm
		// ngoài tầm quét của reaper
		result := s.storage.DeleteObject(ctx, key)
		if result.Outcome != storage.DeleteOutcomeDeleted {
			log.Error().Str("key", key).Str("detail", result.Detail).Msg("Failed to reclaim detached media upload")
		}
		return nil, err
	}

	s.invalidateCreatorCache(ctx, id)

	log.Info().
		Str("creator_id", id.String()).
		Str("media_id", item.ID).
		Str("type", item.Type).
		Msg("Media added")

	return creator, nil
}

// RemoveMedia gỡ item khỏi gallery
// Local state persist TRƯỚC, remote delete sau và chỉ log kết quả:
// provider failure không bao giờ resurrect item đã gỡ
func (s *creatorService) RemoveMedia(ctx context.Context, id uuid.UUID, mediaID string) error {
	var item model.MediaItem

	_, err := s.repo.MutateMedia(ctx, id, func(c *model.Creator) error {
		removed, found := c.RemoveMedia(mediaID)
		if !found {
			return model.ErrMediaNotFound
		}
		item = removed
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCreatorCache(ctx, id)

	result := s.storage.DeleteObject(ctx, item.ID)
	switch result.Outcome {
	case "deleted":
		log.Info().Str("media_id", item.ID).Msg("Remote media object deleted")
	case "not_found":
		log.Warn().Str("media_id", item.ID).Msg("Remote media object already gone")
	default:
		log.Error().Str("media_id", item.ID).Str("detail", result.Detail).Msg("Remote media delete failed")
	}

	return nil
}

// uploadExt chọn file extension cho object key
func uploadExt(filename, contentType string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}
