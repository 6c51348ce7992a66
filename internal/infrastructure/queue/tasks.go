package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types processed by cmd/worker.
const (
	TypeStorageDeletePrefix = "storage:delete_prefix"
	TypeStorageDeleteObject = "storage:delete_object"
)

// StorageDeletePrefixPayload asks the worker to remove every stored object
// under a prefix (museum deleted, all its uploads orphaned).
type StorageDeletePrefixPayload struct {
	Prefix string `json:"prefix"`
}

// StorageDeleteObjectPayload asks the worker to remove a single stored
// object (artifact deleted or its file replaced).
type StorageDeleteObjectPayload struct {
	Key string `json:"key"`
}

func NewStorageDeletePrefixTask(prefix string) (*asynq.Task, error) {
	payload, err := json.Marshal(StorageDeletePrefixPayload{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("marshal delete prefix payload: %w", err)
	}
	return asynq.NewTask(TypeStorageDeletePrefix, payload, asynq.MaxRetry(5)), nil
}

func NewStorageDeleteObjectTask(key string) (*asynq.Task, error) {
	payload, err := json.Marshal(StorageDeleteObjectPayload{Key: key})
	if err != nil {
		return nil, fmt.Errorf("marshal delete object payload: %w", err)
	}
	return asynq.NewTask(TypeStorageDeleteObject, payload, asynq.MaxRetry(5)), nil
}
