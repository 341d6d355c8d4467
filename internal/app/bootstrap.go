package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// SeedIfEmpty loads c into store when the store has no services yet.
// It reports whether seeding ran. Call it once after the store is built
// and before the server accepts traffic.
func SeedIfEmpty(ctx context.Context, store ports.CatalogStore, c domain.Catalog, logger *slog.Logger) (bool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		return false, fmt.Errorf("checking existing content: %w", err)
	}

	if len(services) > 0 {
		logger.DebugContext(ctx, "content already present, skipping seed",
			slog.Int("services", len(services)),
		)

		return false, nil
	}

	if err := store.SeedCatalog(ctx, c); err != nil {
		return false, fmt.Errorf("seeding content: %w", err)
	}

	logger.InfoContext(ctx, "seeded default content",
		slog.Int("services", len(c.Services)),
		slog.Int("portfolio", len(c.Portfolio)),
		slog.Int("testimonials", len(c.Testimonials)),
	)

	return true, nil
}
