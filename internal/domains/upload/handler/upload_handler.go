package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kunstkamera-backend/internal/domains/upload"
	"kunstkamera-backend/internal/shared/middleware"
	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/logger"
)

type UploadHandler struct {
	service upload.Service

	// maxFileSize gates the multipart part before it is buffered; the
	// service re-checks against the bytes actually read.
	maxFileSize int64
}

func NewUploadHandler(svc upload.Service, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		service:     svc,
		maxFileSize: maxFileSize,
	}
}

// Upload - POST /api/v1/upload
// Multipart form: file (required), bucket (required), folder (optional).
func (h *UploadHandler) Upload(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "UPLOAD_ERROR", upload.ErrPayloadTooLarge.Error())
		return
	}

	bucket := c.PostForm("bucket")
	if bucket == "" {
		response.BadRequest(c, "bucket is required")
		return
	}
	folder := c.PostForm("folder")

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}

	declaredType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.Store(c.Request.Context(), data, declaredType, fileHeader.Filename, bucket, folder)
	if err != nil {
		status := upload.GetHTTPStatusCode(err)
		if status == http.StatusInternalServerError {
			logger.Error("store upload", err)
			response.InternalServerError(c, "Internal server error")
			return
		}
		response.ErrorResponse(c, status, "UPLOAD_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}
