package profile

import (
	"errors"
	"fmt"
	"net/http"
)

// ProfileError is the base error for the profile domain.
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

var (
	ErrUsernameTaken = &ProfileError{
		Code:    "USERNAME_TAKEN",
		Message: "This username is already taken",
	}

	ErrProfileNotFound = &ProfileError{
		Code:    "PROFILE_NOT_FOUND",
		Message: "Profile not found",
	}
)

func NewStoreError(op string, err error) *ProfileError {
	return &ProfileError{
		Code:    "PROFILE_STORE_ERROR",
		Message: fmt.Sprintf("Failed to %s profile", op),
		Err:     err,
	}
}

func IsUsernameTaken(err error) bool {
	var profErr *ProfileError
	return errors.As(err, &profErr) && profErr.Code == "USERNAME_TAKEN"
}

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var profErr *ProfileError
	if !errors.As(err, &profErr) {
		return http.StatusInternalServerError
	}

	switch profErr.Code {
	case "USERNAME_TAKEN":
		return http.StatusBadRequest
	case "PROFILE_NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
