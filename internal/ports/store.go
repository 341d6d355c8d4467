// Package ports defines the contracts the application layer depends on.
// Adapters under internal/adapters implement them; context is always the
// first parameter and only domain types cross the boundary.
package ports

import (
	"context"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

// DataStore is the single interface the request handlers use for content
// and quote requests. Two variants exist: a database-backed store and an
// in-memory one. Which one serves the process is decided once at startup.
type DataStore interface {
	// ListServices returns every service in insertion order.
	ListServices(ctx context.Context) ([]domain.Service, error)

	// ListPortfolio returns every portfolio item in insertion order.
	ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error)

	// ListTestimonials returns every testimonial in insertion order.
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)

	// CreateQuoteRequest persists in and returns the stored record with its
	// assigned ID, creation time and pending status. Any persistence failure
	// is returned as a *domain.StorageError.
	CreateQuoteRequest(ctx context.Context, in domain.QuoteRequestInput) (*domain.QuoteRequest, error)
}

// CatalogSeeder loads reference content into a store.
type CatalogSeeder interface {
	// SeedCatalog inserts every entry of c that is not already present,
	// matching on name (services, testimonials) or title (portfolio).
	// Running it twice leaves the store unchanged the second time.
	SeedCatalog(ctx context.Context, c domain.Catalog) error
}

// CatalogStore is a DataStore that can also be seeded.
type CatalogStore interface {
	DataStore
	CatalogSeeder
}
