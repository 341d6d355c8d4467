package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen/studio-site/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_TraceHeaderAndSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(
		TracingMiddleware("studio-site", otelgin.WithTracerProvider(tp)),
		Middleware(),
	)
	router.GET("/api/services", func(c *gin.Context) {
		ctx := c.Request.Context()
		logging.FromContext(ctx).InfoContext(ctx, "listing services")
		c.JSON(http.StatusOK, []string{})
	})

	var logs bytes.Buffer

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req = req.WithContext(logging.WithContext(req.Context(), slog.New(slog.NewJSONHandler(&logs, nil))))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	traceID := w.Header().Get(HeaderTraceID)
	assert.Len(t, traceID, 32)
	assert.Contains(t, logs.String(), `"trace_id":"`+traceID+`"`)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext().TraceID().String())
}

func TestMiddleware_NoSpanNoHeader(t *testing.T) {
	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/testimonials", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/testimonials", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get(HeaderTraceID))
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m.requestDuration)
	assert.NotNil(t, m.requestTotal)
	assert.NotNil(t, m.activeRequests)
}

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.Equal(t, DefaultShutdownTimeout, p.timeout)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_Shutdown(t *testing.T) {
	var calls int

	flushed := func(ctx context.Context) error {
		calls++
		return ctx.Err()
	}
	broken := func(context.Context) error {
		calls++
		return errors.New("collector unreachable")
	}

	t.Run("runs every exporter and joins errors", func(t *testing.T) {
		calls = 0
		p := &Provider{shutdowns: []func(context.Context) error{broken, flushed}, timeout: time.Second}

		err := p.Shutdown(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "collector unreachable")
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled caller still gets a flush window", func(t *testing.T) {
		calls = 0
		p := &Provider{shutdowns: []func(context.Context) error{flushed}, timeout: time.Second}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, p.Shutdown(ctx))
		assert.Equal(t, 1, calls)
	})
}
