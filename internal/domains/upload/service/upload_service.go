package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"kunstkamera-backend/internal/domains/upload"
)

const maxSanitizedNameLen = 100

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
}

// Logical buckets are prefixes within the single storage bucket.
var allowedBuckets = map[string]bool{
	"museum-covers": true,
	"artifacts":     true,
	"avatars":       true,
}

type uploadService struct {
	storage     upload.Storage
	maxFileSize int64
}

func NewUploadService(storage upload.Storage, maxFileSize int64) upload.Service {
	return &uploadService{
		storage:     storage,
		maxFileSize: maxFileSize,
	}
}

// Store validates in a fixed order, each stage short-circuiting: size cap,
// declared MIME type, filename. The sanitized name is only a suffix of the
// final key, never the key itself.
func (s *uploadService) Store(ctx context.Context, data []byte, declaredType, fileName, bucket, folder string) (*upload.Result, error) {
	if len(data) == 0 {
		return nil, upload.ErrEmptyFile
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, upload.ErrPayloadTooLarge
	}
	if !allowedTypes[declaredType] {
		return nil, upload.ErrUnsupportedType
	}
	if !allowedBuckets[bucket] {
		return nil, upload.ErrInvalidBucket
	}

	token, err := randomToken(6)
	if err != nil {
		return nil, upload.NewStorageError(err)
	}

	name := SanitizeFileName(fileName)
	key := bucket + "/"
	if folder = sanitizeFolder(folder); folder != "" {
		key += folder + "/"
	}
	key += fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, name)

	return s.put(ctx, key, data, declaredType)
}

func (s *uploadService) put(ctx context.Context, key string, data []byte, contentType string) (*upload.Result, error) {
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, upload.NewStorageError(err)
	}

	return &upload.Result{
		URL:  url,
		Path: key,
		Size: int64(len(data)),
		Type: contentType,
	}, nil
}

// SanitizeFileName reduces a client-supplied name to [A-Za-z0-9._-],
// collapses traversal sequences and caps the length.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()

	for strings.Contains(out, "..") {
		out = strings.ReplaceAll(out, "..", ".")
	}
	out = strings.Trim(out, ".")

	if out == "" {
		out = "file"
	}
	if len(out) > maxSanitizedNameLen {
		ext := path.Ext(out)
		if len(ext) > 10 {
			ext = ""
		}
		out = out[:maxSanitizedNameLen-len(ext)] + ext
	}

	return out
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range folder {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomToken(bytesLen int) (string, error) {
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
