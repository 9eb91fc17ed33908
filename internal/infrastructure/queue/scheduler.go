package queue

import (
	"time"

	"creator-portal-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Scheduler đăng ký các cron jobs chạy định kỳ trên worker
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterCleanupJobs đăng ký tất cả scheduled jobs
func (s *Scheduler) RegisterCleanupJobs() error {
	// Orphan upload reaper: mỗi ngày 3h sáng UTC
	task := asynq.NewTask(shared.TypeReapOrphanUploads, nil)
	entryID, err := s.scheduler.Register("0 3 * * *", task, asynq.Queue("default"), asynq.MaxRetry(1))
	if err != nil {
		return err
	}

	log.Info().
		Str("entry_id", entryID).
		Str("task", shared.TypeReapOrphanUploads).
		Msg("Registered scheduled job")

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
