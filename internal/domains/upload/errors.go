package upload

import (
	"errors"
	"fmt"
	"net/http"
)

// UploadError is the base error for the upload gateway.
type UploadError struct {
	Code    string
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

var (
	ErrPayloadTooLarge = &UploadError{
		Code:    "UPLOAD_TOO_LARGE",
		Message: "File exceeds the maximum allowed size",
	}

	ErrUnsupportedType = &UploadError{
		Code:    "UPLOAD_UNSUPPORTED_TYPE",
		Message: "File type is not allowed",
	}

	ErrInvalidBucket = &UploadError{
		Code:    "UPLOAD_INVALID_BUCKET",
		Message: "Unknown upload bucket",
	}

	ErrEmptyFile = &UploadError{
		Code:    "UPLOAD_EMPTY_FILE",
		Message: "File is empty",
	}
)

func NewStorageError(err error) *UploadError {
	return &UploadError{
		Code:    "UPLOAD_STORAGE_ERROR",
		Message: "Failed to store file",
		Err:     err,
	}
}

// GetHTTPStatusCode maps gateway errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var upErr *UploadError
	if !errors.As(err, &upErr) {
		return http.StatusInternalServerError
	}

	switch upErr.Code {
	case "UPLOAD_TOO_LARGE":
		return http.StatusRequestEntityTooLarge
	case "UPLOAD_UNSUPPORTED_TYPE":
		return http.StatusUnsupportedMediaType
	case "UPLOAD_INVALID_BUCKET", "UPLOAD_EMPTY_FILE":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
