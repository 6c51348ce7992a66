package museum

import (
	"errors"
	"fmt"
	"net/http"
)

// MuseumError is the base error for the museum domain.
type MuseumError struct {
	Code    string
	Message string
	Err     error
}

func (e *MuseumError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *MuseumError) Unwrap() error {
	return e.Err
}

var (
	ErrMuseumNotFound = &MuseumError{
		Code:    "MUSEUM_NOT_FOUND",
		Message: "Museum not found",
	}

	ErrSlugTaken = &MuseumError{
		Code:    "SLUG_TAKEN",
		Message: "Museum with this slug already exists",
	}

	// ErrForbidden: the principal is authenticated but does not own the
	// museum. Distinct from the middleware's 401.
	ErrForbidden = &MuseumError{
		Code:    "MUSEUM_FORBIDDEN",
		Message: "You do not own this museum",
	}
)

func NewStoreError(op string, err error) *MuseumError {
	return &MuseumError{
		Code:    "MUSEUM_STORE_ERROR",
		Message: fmt.Sprintf("Failed to %s museum", op),
		Err:     err,
	}
}

func IsSlugTaken(err error) bool {
	var musErr *MuseumError
	return errors.As(err, &musErr) && musErr.Code == "SLUG_TAKEN"
}

func IsNotFound(err error) bool {
	var musErr *MuseumError
	return errors.As(err, &musErr) && musErr.Code == "MUSEUM_NOT_FOUND"
}

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var musErr *MuseumError
	if !errors.As(err, &musErr) {
		return http.StatusInternalServerError
	}

	switch musErr.Code {
	case "MUSEUM_NOT_FOUND":
		return http.StatusNotFound
	case "SLUG_TAKEN":
		return http.StatusBadRequest
	case "MUSEUM_FORBIDDEN":
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
