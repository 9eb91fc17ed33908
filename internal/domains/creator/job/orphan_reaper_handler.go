package job

import (
	"context"
	"time"

	"creator-portal-backend/internal/infrastructure/storage"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Staged uploads quá tuổi này coi như mồ côi
const orphanMaxAge = 24 * time.Hour

// OrphanReaperHandler dọn các uploads còn kẹt dưới staging prefix
// (upload xong nhưng request đứt trước khi promote + attach vào creator)
// Scheduled hàng đêm qua cron
type OrphanReaperHandler struct {
	storage *storage.MinIOStorage
}

func NewOrphanReaperHandler(minioStorage *storage.MinIOStorage) *OrphanReaperHandler {
	return &OrphanReaperHandler{storage: minioStorage}
}

func (h *OrphanReaperHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	cutoff := time.Now().Add(-orphanMaxAge)

	removed, err := h.storage.RemoveOlderThan(ctx, storage.StagingPrefix, cutoff)
	if err != nil {
		return err
	}

	log.Info().
		Int("removed", removed).
		Time("cutoff", cutoff).
		Msg("🧹 Orphan upload sweep completed")

	return nil
}
