package job

import (
	"context"
	"encoding/json"
	"fmt"

	"creator-portal-backend/internal/infrastructure/storage"
	"creator-portal-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PurgeMediaHandler xóa toàn bộ storage objects của một creator đã bị xóa
// Chạy trong worker process, retry tối đa theo queue config
type PurgeMediaHandler struct {
	storage *storage.MinIOStorage
}

func NewPurgeMediaHandler(minioStorage *storage.MinIOStorage) *PurgeMediaHandler {
	return &PurgeMediaHandler{storage: minioStorage}
}

func (h *PurgeMediaHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.PurgeCreatorMediaPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Payload hỏng thì retry cũng vô ích
		return fmt.Errorf("invalid payload: %w: %w", err, asynq.SkipRetry)
	}

	prefix := fmt.Sprintf("creators/%s/", payload.CreatorID)
	if err := h.storage.RemoveFolder(ctx, prefix); err != nil {
		return fmt.Errorf("failed to purge media for creator %s: %w", payload.CreatorID, err)
	}

	log.Info().
		Str("creator_id", payload.CreatorID).
		Str("prefix", prefix).
		Msg("🧹 Purged creator media folder")

	return nil
}
