package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Upstream wraps an external service failure, exposing the underlying
// error's message in the response body.
func Upstream(err error) *AppError {
	return &AppError{
		Code:       CodeUpstreamFailure,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
