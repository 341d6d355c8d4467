// Package http serves the studio site API over Gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Options configures a Server.
type Options struct {
	Host string
	Port int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server owns the Gin engine and the listener the site is served on.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	logger *slog.Logger

	listener net.Listener
}

// New returns a server for opts. Routes are added with SetupRouter on
// Engine before Start.
func New(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()

	return &Server{
		engine: engine,
		logger: logger,
		srv: &http.Server{
			Addr:         net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
			Handler:      engine,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  opts.IdleTimeout,
		},
	}
}

// Engine returns the Gin engine routes are registered on.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr is the bound address once Start succeeded, the configured one before.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.srv.Addr
}

// Start binds the address and serves in the background. A bind failure is
// returned directly. The channel carries any later serve error and is
// closed when the server stops.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.listener = ln

	s.logger.Info("site listening",
		slog.String("addr", ln.Addr().String()),
		slog.Duration("read_timeout", s.srv.ReadTimeout),
		slog.Duration("write_timeout", s.srv.WriteTimeout),
	)

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serving site: %w", err)
		}
	}()

	return errCh, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("site shutting down")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("site shutdown: %w", err)
	}

	s.logger.Info("site stopped")

	return nil
}
