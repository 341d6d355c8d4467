package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/studio-site/internal/adapters/http/handlers"
	"github.com/jsamuelsen/studio-site/internal/adapters/http/middleware"
	"github.com/jsamuelsen/studio-site/internal/platform/telemetry"
)

// APIPrefix is the path every site endpoint is mounted under.
const APIPrefix = "/api"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves the /-/ probes. Optional.
	HealthHandler *handlers.HealthHandler

	// SiteHandler serves the /api endpoints. Optional.
	SiteHandler *handlers.SiteHandler

	// Timeout bounds the read endpoints. Zero disables it.
	Timeout time.Duration

	// MaxQuoteBytes caps the POST /api/quotes body. Zero disables it.
	MaxQuoteBytes int64
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing, then metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - GET /api routes only
//  7. Body limit - POST /api/quotes only
//
// Route groups:
//   - /-/ (internal): probes, build info and the Prometheus scrape
//   - /api/ (public): catalog reads and quote intake
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(NoRoute)
	engine.NoMethod(NoMethod)

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.SiteHandler != nil {
		var routes handlers.SiteRoutes
		if cfg.Timeout > 0 {
			routes.Read = append(routes.Read, middleware.Timeout(cfg.Timeout))
		}

		if cfg.MaxQuoteBytes > 0 {
			routes.Write = append(routes.Write, middleware.BodyLimit(cfg.MaxQuoteBytes))
		}

		cfg.SiteHandler.RegisterSiteRoutes(engine.Group(APIPrefix), routes)
	}
}
