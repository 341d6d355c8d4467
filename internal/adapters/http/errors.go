package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/studio-site/internal/adapters/http/dto"
	"github.com/jsamuelsen/studio-site/internal/adapters/http/middleware"
)

// Messages of the envelope responses written outside the site handlers.
const (
	MessageRouteNotFound    = "route not found"
	MessageMethodNotAllowed = "method not allowed"
)

// AbortWithErrorCode writes the {error, traceId} envelope for code and stops
// the chain. The status follows dto.HTTPStatusFromCode.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).
		WithTraceID(middleware.TraceIDFromContext(c.Request.Context()))

	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}

// NoRoute handles requests that match no registered route.
func NoRoute(c *gin.Context) {
	AbortWithErrorCode(c, dto.ErrorCodeNotFound, MessageRouteNotFound)
}

// NoMethod handles requests to a known path with an unregistered method.
func NoMethod(c *gin.Context) {
	AbortWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, MessageMethodNotAllowed)
}
