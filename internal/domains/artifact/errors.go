package artifact

import (
	"errors"
	"fmt"
	"net/http"
)

// ArtifactError is the base error for the artifact domain.
type ArtifactError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

var (
	ErrArtifactNotFound = &ArtifactError{
		Code:    "ARTIFACT_NOT_FOUND",
		Message: "Artifact not found",
	}

	// ErrMuseumNotFound covers both a missing parent and a parent the
	// requester is not allowed to see.
	ErrMuseumNotFound = &ArtifactError{
		Code:    "ARTIFACT_MUSEUM_NOT_FOUND",
		Message: "Museum not found",
	}

	ErrForbidden = &ArtifactError{
		Code:    "ARTIFACT_FORBIDDEN",
		Message: "You do not own this artifact's museum",
	}
)

func NewStoreError(op string, err error) *ArtifactError {
	return &ArtifactError{
		Code:    "ARTIFACT_STORE_ERROR",
		Message: fmt.Sprintf("Failed to %s artifact", op),
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	var artErr *ArtifactError
	return errors.As(err, &artErr) &&
		(artErr.Code == "ARTIFACT_NOT_FOUND" || artErr.Code == "ARTIFACT_MUSEUM_NOT_FOUND")
}

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var artErr *ArtifactError
	if !errors.As(err, &artErr) {
		return http.StatusInternalServerError
	}

	switch artErr.Code {
	case "ARTIFACT_NOT_FOUND", "ARTIFACT_MUSEUM_NOT_FOUND":
		return http.StatusNotFound
	case "ARTIFACT_FORBIDDEN":
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
