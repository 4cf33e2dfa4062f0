package util

import (
	"errors"
	"net/http"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrEmailRegistered       = errors.New("Email already in use")
	ErrInvalidCredentials    = errors.New("Invalid credentials")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrUserNotFound          = errors.New("User not found")
	ErrUpstream              = errors.New("upstream failure")
	ErrDeadlineExceeded      = errors.New("upstream deadline exceeded")
	ErrProviderNotConfigured = errors.New("AI provider is not configured")
)

// StatusFor 将领域错误映射为 HTTP 状态码
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailRegistered):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
