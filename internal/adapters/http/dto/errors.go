// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/platform/logging"
)

// MessageInternalError is the only detail a client sees for a server fault.
const MessageInternalError = "Internal server error"

// MessageResponse is the body the site API returns for errors:
// {"message": "..."} or, for validation failures, {"message": "...", "field": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse is the envelope used by middleware-level failures (panics,
// timeouts, unknown routes) that never reach a site handler.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "TIMEOUT").
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL_ERROR"
	ErrorCodeTimeout          = "TIMEOUT"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Response headers written by the telemetry and request ID middleware.
const (
	headerTraceID   = "X-Trace-ID"
	headerRequestID = "X-Request-ID"
)

// GetTraceID returns the trace ID already written to the response, falling
// back to the request ID.
func GetTraceID(c *gin.Context) string {
	for _, h := range []string{headerTraceID, headerRequestID} {
		if id := c.Writer.Header().Get(h); id != "" {
			return id
		}
	}

	return c.GetHeader(headerRequestID)
}

// HandleError writes the site API response for err.
//
// Validation failures become 400 with the first failing field. Everything
// else is a 500 with a generic message; the cause is only logged.
func HandleError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, MessageResponse{
			Message: validation.Message,
			Field:   validation.Field,
		})

		return
	}

	logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
		"error", err.Error(),
		"storage", domain.IsStorage(err),
		"trace_id", GetTraceID(c),
	)

	c.JSON(http.StatusInternalServerError, MessageResponse{Message: MessageInternalError})
}
