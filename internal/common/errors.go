package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"saasboard/internal/logger"
)

// ErrorKind classifies a failure independent of transport.
type ErrorKind string

const (
	KindBadRequest      ErrorKind = "BAD_REQUEST"
	KindUnauthorized    ErrorKind = "UNAUTHORIZED"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindConflict        ErrorKind = "CONFLICT"
	KindTooManyRequests ErrorKind = "TOO_MANY_REQUESTS"
	KindInternal        ErrorKind = "INTERNAL"
)

var kindStatus = map[ErrorKind]int{
	KindBadRequest:      http.StatusBadRequest,
	KindUnauthorized:    http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindTooManyRequests: http.StatusTooManyRequests,
	KindInternal:        http.StatusInternalServerError,
}

// AppError is returned by services and translated to an HTTP response once, by HTTPErrorHandler.
type AppError struct {
	Kind    ErrorKind
	Message string
	Details map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

func NewBadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func NewValidationError(message string, details map[string]string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message, Details: details}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewTooManyRequests(message string) *AppError {
	return &AppError{Kind: KindTooManyRequests, Message: message}
}

// NewInternal wraps an unexpected failure. The cause is logged, never returned to clients.
func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPErrorHandler maps errors returned by handlers and middleware to the JSON error envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := ErrorResponse{Message: "Internal server error", Code: string(KindInternal)}

	var appErr *AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status()
		resp.Code = string(appErr.Kind)
		resp.Details = appErr.Details
		if status < http.StatusInternalServerError {
			resp.Message = appErr.Message
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		resp.Code = codeForStatus(status)
		resp.Message = http.StatusText(status)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			resp.Message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error("request failed",
			zap.Error(err),
			zap.String("path", c.Path()),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, resp)
	}
	if writeErr != nil {
		logger.FromContext(c.Request().Context()).Warn("failed to write error response", zap.Error(writeErr))
	}
}

func codeForStatus(status int) string {
	for kind, s := range kindStatus {
		if s == status {
			return string(kind)
		}
	}
	if status >= http.StatusInternalServerError {
		return string(KindInternal)
	}
	return "CLIENT_ERROR"
}
