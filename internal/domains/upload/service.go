package upload

import "context"

// Storage is the slice of the file storage backend the gateway consumes.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Result is what callers get back; they associate URL with whatever entity
// field they are filling. The gateway knows nothing about those entities.
type Result struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Service validates and stores uploaded binaries.
type Service interface {
	// Store runs the validation pipeline in order (size, type, name) and
	// writes the file under a collision-free key.
	Store(ctx context.Context, data []byte, declaredType, fileName, bucket, folder string) (*Result, error)
}
