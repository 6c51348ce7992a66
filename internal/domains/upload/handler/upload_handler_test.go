package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunstkamera-backend/internal/domains/upload"
)

type fakeUploadService struct {
	calls  int
	result *upload.Result
	err    error
}

func (f *fakeUploadService) Store(ctx context.Context, data []byte, declaredType, fileName, bucket, folder string) (*upload.Result, error) {
	f.calls++
	return f.result, f.err
}

func newUploadRouter(svc upload.Service, maxFileSize int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uuid.New())
	})
	h := NewUploadHandler(svc, maxFileSize)
	r.POST("/api/v1/upload", h.Upload)
	return r
}

func multipartUpload(t *testing.T, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("bucket", "artifacts"))
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadRejectsOversizedFileBeforeReading(t *testing.T) {
	svc := &fakeUploadService{}
	r := newUploadRouter(svc, 16)

	body, contentType := multipartUpload(t, bytes.Repeat([]byte("x"), 64))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Zero(t, svc.calls, "oversized part must never reach the service")
}

func TestUploadWithinLimitReachesService(t *testing.T) {
	svc := &fakeUploadService{
		result: &upload.Result{URL: "https://cdn.local/artifacts/x.jpg", Size: 4},
	}
	r := newUploadRouter(svc, 1024)

	body, contentType := multipartUpload(t, []byte("data"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
}
