//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	sitehttp "github.com/jsamuelsen/studio-site/internal/adapters/http"
	"github.com/jsamuelsen/studio-site/internal/adapters/http/handlers"
	"github.com/jsamuelsen/studio-site/internal/adapters/store/database"
	"github.com/jsamuelsen/studio-site/internal/adapters/store/memory"
	"github.com/jsamuelsen/studio-site/internal/app"
	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/platform/config"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// siteStore is what the scenarios need from either store variant.
type siteStore interface {
	ports.CatalogStore
	ports.HealthChecker
	ListQuoteRequests(ctx context.Context) ([]domain.QuoteRequest, error)
}

// recordingNotifier captures notifications and can be told to fail.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.QuoteRequestInput
	err  error
}

func (n *recordingNotifier) SendQuoteEmail(_ context.Context, in domain.QuoteRequestInput) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}

	n.sent = append(n.sent, in)

	return nil
}

func (n *recordingNotifier) failWith(err error) {
	n.mu.Lock()
	n.err = err
	n.mu.Unlock()
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.sent)
}

// site is an in-process studio site.
type site struct {
	server   *httptest.Server
	store    siteStore
	notifier *recordingNotifier
}

func (s *site) close() {
	s.server.Close()

	if closer, ok := s.store.(io.Closer); ok {
		_ = closer.Close()
	}
}

// newSite starts the full router over store after seeding it.
func newSite(ctx context.Context, store siteStore, variant string) (*site, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := app.SeedIfEmpty(ctx, store, domain.DefaultCatalog(), logger); err != nil {
		return nil, err
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	notifier := &recordingNotifier{}

	srv := sitehttp.New(sitehttp.Options{
		Host:         "127.0.0.1",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
		Logger:       logger,
	})

	sitehttp.SetupRouter(srv.Engine(), sitehttp.RouterConfig{
		Logger:        logger,
		ServiceName:   "studio-site",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "test", "").WithStore(variant)),
		SiteHandler: handlers.NewSiteHandler(
			app.NewCatalogService(store, logger),
			app.NewQuoteService(app.QuoteServiceConfig{Store: store, Notifier: notifier, Logger: logger}),
		),
		Timeout:       config.DefaultRequestTimeout,
		MaxQuoteBytes: config.DefaultMaxRequestSize,
	})

	return &site{
		server:   httptest.NewServer(srv.Engine()),
		store:    store,
		notifier: notifier,
	}, nil
}

// newMemorySite starts a site over a fresh in-memory store.
func newMemorySite(ctx context.Context) (*site, error) {
	return newSite(ctx, memory.New(), handlers.StoreVariantMemory)
}

// newDatabaseSite starts a site over a fresh sqlite database under dir.
func newDatabaseSite(ctx context.Context, dir string) (*site, error) {
	store, err := database.Open(ctx, database.Config{URL: "sqlite://" + dir + "/studio.db"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return nil, err
	}

	s, err := newSite(ctx, store, handlers.StoreVariantPersistent)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return s, nil
}

// startSites returns one site per store variant, closed on cleanup.
func startSites(t *testing.T) map[string]*site {
	t.Helper()

	ctx := context.Background()

	mem, err := newMemorySite(ctx)
	if err != nil {
		t.Fatalf("starting memory site: %v", err)
	}

	db, err := newDatabaseSite(ctx, t.TempDir())
	if err != nil {
		mem.close()
		t.Fatalf("starting database site: %v", err)
	}

	t.Cleanup(func() {
		mem.close()
		db.close()
	})

	return map[string]*site{
		handlers.StoreVariantMemory:     mem,
		handlers.StoreVariantPersistent: db,
	}
}
