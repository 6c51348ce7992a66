package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunstkamera-backend/internal/domains/upload"
)

type fakeStorage struct {
	lastKey         string
	lastContentType string
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	f.lastKey = key
	f.lastContentType = contentType
	return "http://storage.local/kunstkamera/" + key, nil
}

const maxSize = 5 * 1024 * 1024

func TestStore_RejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, maxSize)

	data := make([]byte, 6*1024*1024)
	_, err := svc.Store(context.Background(), data, "image/png", "big.png", "artifacts", "")

	require.ErrorIs(t, err, upload.ErrPayloadTooLarge)
}

func TestStore_RejectsUndeclaredType(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, maxSize)

	// a renamed binary arrives as octet-stream regardless of extension
	_, err := svc.Store(context.Background(), []byte("MZ"), "application/octet-stream", "setup.png", "artifacts", "")

	require.ErrorIs(t, err, upload.ErrUnsupportedType)
}

func TestStore_RejectsUnknownBucket(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, maxSize)

	_, err := svc.Store(context.Background(), []byte("x"), "image/png", "a.png", "etc", "")

	require.ErrorIs(t, err, upload.ErrInvalidBucket)
}

func TestStore_RejectsEmptyFile(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, maxSize)

	_, err := svc.Store(context.Background(), nil, "image/png", "a.png", "artifacts", "")

	require.ErrorIs(t, err, upload.ErrEmptyFile)
}

func TestStore_SizeCheckedBeforeType(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, maxSize)

	// oversized AND wrong type: the size stage short-circuits first
	data := make([]byte, 6*1024*1024)
	_, err := svc.Store(context.Background(), data, "application/octet-stream", "a.bin", "artifacts", "")

	require.ErrorIs(t, err, upload.ErrPayloadTooLarge)
}

func TestStore_KeyShape(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewUploadService(storage, maxSize)

	res, err := svc.Store(context.Background(), []byte("img"), "image/jpeg", "my photo.jpg", "artifacts", "abc123")
	require.NoError(t, err)

	keyPattern := regexp.MustCompile(`^artifacts/abc123/\d+-[0-9a-f]{12}-my_photo\.jpg$`)
	assert.Regexp(t, keyPattern, res.Path)
	assert.Equal(t, storage.lastKey, res.Path)
	assert.Equal(t, "image/jpeg", res.Type)
	assert.Equal(t, int64(3), res.Size)
	assert.True(t, strings.HasSuffix(res.URL, res.Path))
}

func TestStore_TwoUploadsSameNameGetDistinctKeys(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewUploadService(storage, maxSize)

	first, err := svc.Store(context.Background(), []byte("a"), "image/png", "a.png", "avatars", "")
	require.NoError(t, err)
	second, err := svc.Store(context.Background(), []byte("b"), "image/png", "a.png", "avatars", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.jpg", "photo.jpg"},
		{"spaces", "my photo.jpg", "my_photo.jpg"},
		{"traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\temp\evil.png`, "evil.png"},
		{"unicode stripped", "фото.png", "____.png"},
		{"empty", "", "file"},
		{"dots only", "...", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestSanitizeFileName_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 300) + ".png"
	out := SanitizeFileName(long)

	assert.LessOrEqual(t, len(out), 100)
	assert.True(t, strings.HasSuffix(out, ".png"))
}
