package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ObjectRemover is the slice of the storage backend the cleanup worker
// needs.
type ObjectRemover interface {
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// CleanupHandler processes storage cleanup tasks in cmd/worker.
type CleanupHandler struct {
	storage ObjectRemover
}

func NewCleanupHandler(storage ObjectRemover) *CleanupHandler {
	return &CleanupHandler{
		storage: storage,
	}
}

// Register attaches the handler to an asynq mux.
func (h *CleanupHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeStorageDeletePrefix, h.HandleDeletePrefix)
	mux.HandleFunc(TypeStorageDeleteObject, h.HandleDeleteObject)
}

func (h *CleanupHandler) HandleDeletePrefix(ctx context.Context, t *asynq.Task) error {
	var p StorageDeletePrefixPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal %s payload: %v: %w", TypeStorageDeletePrefix, err, asynq.SkipRetry)
	}

	if err := h.storage.DeleteByPrefix(ctx, p.Prefix); err != nil {
		log.Error().Err(err).Str("prefix", p.Prefix).Msg("Storage prefix cleanup failed")
		return err
	}

	log.Info().Str("prefix", p.Prefix).Msg("Storage prefix cleaned up")
	return nil
}

func (h *CleanupHandler) HandleDeleteObject(ctx context.Context, t *asynq.Task) error {
	var p StorageDeleteObjectPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal %s payload: %v: %w", TypeStorageDeleteObject, err, asynq.SkipRetry)
	}

	if err := h.storage.Delete(ctx, p.Key); err != nil {
		log.Error().Err(err).Str("key", p.Key).Msg("Storage object cleanup failed")
		return err
	}

	log.Info().Str("key", p.Key).Msg("Storage object cleaned up")
	return nil
}
