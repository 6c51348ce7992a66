package user

import (
	"errors"
	"fmt"
	"net/http"
)

// UserError is the base error for the user domain.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

var (
	ErrEmailAlreadyExists = &UserError{
		Code:    "EMAIL_ALREADY_EXISTS",
		Message: "An account with this email already exists",
	}

	// ErrInvalidCredentials is deliberately generic: wrong email and wrong
	// password are indistinguishable to the caller.
	ErrInvalidCredentials = &UserError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid email or password",
	}

	ErrUserNotFound = &UserError{
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}

	ErrInvalidRefreshToken = &UserError{
		Code:    "INVALID_REFRESH_TOKEN",
		Message: "Refresh token is invalid or expired",
	}
)

func NewStoreError(op string, err error) *UserError {
	return &UserError{
		Code:    "USER_STORE_ERROR",
		Message: fmt.Sprintf("Failed to %s user", op),
		Err:     err,
	}
}

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	var userErr *UserError
	if !errors.As(err, &userErr) {
		return http.StatusInternalServerError
	}

	switch userErr.Code {
	case "EMAIL_ALREADY_EXISTS":
		return http.StatusBadRequest
	case "INVALID_CREDENTIALS", "INVALID_REFRESH_TOKEN":
		return http.StatusUnauthorized
	case "USER_NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
