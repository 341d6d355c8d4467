package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// CategoryAll selects every portfolio item.
const CategoryAll = "all"

// CatalogService serves the studio's read-only content.
type CatalogService struct {
	store  ports.DataStore
	logger *slog.Logger
}

// NewCatalogService creates a catalog service. It panics on a nil store.
func NewCatalogService(store ports.DataStore, logger *slog.Logger) *CatalogService {
	if store == nil {
		panic("app: catalog store is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{store: store, logger: logger}
}

// Services returns every service.
func (s *CatalogService) Services(ctx context.Context) ([]domain.Service, error) {
	return s.store.ListServices(ctx)
}

// Portfolio returns the portfolio items in category. An empty category or
// CategoryAll returns everything. Matching ignores case.
func (s *CatalogService) Portfolio(ctx context.Context, category string) ([]domain.PortfolioItem, error) {
	items, err := s.store.ListPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return items, nil
	}

	filtered := make([]domain.PortfolioItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Category, category) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// Testimonials returns every testimonial.
func (s *CatalogService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.store.ListTestimonials(ctx)
}

// Content loads services, portfolio and testimonials concurrently. The first
// failure cancels the other reads.
func (s *CatalogService) Content(ctx context.Context) (domain.Catalog, error) {
	services, portfolio, testimonials, err := Parallel3(ctx,
		s.store.ListServices,
		s.store.ListPortfolio,
		s.store.ListTestimonials,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "loading site content", slog.Any("error", err))
		return domain.Catalog{}, err
	}

	return domain.Catalog{
		Services:     services,
		Portfolio:    portfolio,
		Testimonials: testimonials,
	}, nil
}
