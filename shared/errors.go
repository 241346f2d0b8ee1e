package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status alongside the message so handlers can
// return errors and let the fiber error handler render them.
type AppError struct {
	StatusCode int         `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, message string, data interface{}) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func ErrBadRequest(message string) *AppError {
	if message == "" {
		message = "Bad Request"
	}
	return NewAppError(http.StatusBadRequest, message, nil)
}

func ErrUnauthorized() *AppError {
	return NewAppError(http.StatusUnauthorized, "Unauthorized", nil)
}

func ErrNotFound(message string) *AppError {
	if message == "" {
		message = "Not Found"
	}
	return NewAppError(http.StatusNotFound, message, nil)
}

func ErrTooManyRequests(data interface{}) *AppError {
	return NewAppError(http.StatusTooManyRequests, "Too Many Requests", data)
}

// ErrValidation enumerates every violated field in a single response.
func ErrValidation(problems map[string][]string) *AppError {
	return NewAppError(http.StatusBadRequest, "Validation failed", problems)
}
