package queue

import (
	"encoding/json"
	"fmt"

	"creator-portal-backend/internal/shared"

	"github.com/hibiken/asynq"
)

// Client wraps asynq.Client cho enqueue từ API process
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueuePurgeCreatorMedia enqueue job xóa toàn bộ storage objects của một creator
// Gọi sau khi creator đã bị xóa khỏi DB (local state authoritative)
func (c *Client) EnqueuePurgeCreatorMedia(creatorID string) error {
	payload, err := json.Marshal(shared.PurgeCreatorMediaPayload{CreatorID: creatorID})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypePurgeCreatorMedia, payload)
	if _, err := c.client.Enqueue(task, asynq.Queue("default"), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", shared.TypePurgeCreatorMedia, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
