package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Enqueuer is the slice of the queue the CRUD services depend on. Services
// enqueue cleanup work; whether anything consumes it is the worker's concern.
type Enqueuer interface {
	EnqueueDeletePrefix(ctx context.Context, prefix string) error
	EnqueueDeleteObject(ctx context.Context, key string) error
}

// Client wraps the asynq client for producing tasks from the API process.
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

var _ Enqueuer = (*Client)(nil)

func (c *Client) EnqueueDeletePrefix(ctx context.Context, prefix string) error {
	task, err := NewStorageDeletePrefixTask(prefix)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeStorageDeletePrefix, err)
	}

	log.Info().
		Str("task_id", info.ID).
		Str("prefix", prefix).
		Msg("Enqueued storage prefix cleanup")
	return nil
}

func (c *Client) EnqueueDeleteObject(ctx context.Context, key string) error {
	task, err := NewStorageDeleteObjectTask(key)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeStorageDeleteObject, err)
	}

	log.Info().
		Str("task_id", info.ID).
		Str("key", key).
		Msg("Enqueued storage object cleanup")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
