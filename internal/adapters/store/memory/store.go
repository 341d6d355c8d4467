// Package memory provides the in-process data store used when no database
// is configured. Content lives only as long as the process.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// HealthCheckName identifies this store in readiness responses.
const HealthCheckName = "store"

var (
	_ ports.CatalogStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps services, portfolio items, testimonials and quote requests in
// ordered slices. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	services     []domain.Service
	portfolio    []domain.PortfolioItem
	testimonials []domain.Testimonial
	quotes       []domain.QuoteRequest

	nextServiceID     int64
	nextPortfolioID   int64
	nextTestimonialID int64
	nextQuoteID       int64

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for quote timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCatalog replaces the content the store starts with.
func WithCatalog(c domain.Catalog) Option {
	return func(s *Store) {
		s.services = nil
		s.portfolio = nil
		s.testimonials = nil
		s.nextServiceID, s.nextPortfolioID, s.nextTestimonialID = 0, 0, 0
		s.seedLocked(c)
	}
}

// New returns a store pre-populated with domain.DefaultCatalog.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	s.seedLocked(domain.DefaultCatalog())

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListServices returns a copy of every service.
func (s *Store) ListServices(_ context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.services), nil
}

// ListPortfolio returns a copy of every portfolio item.
func (s *Store) ListPortfolio(_ context.Context) ([]domain.PortfolioItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PortfolioItem, len(s.portfolio))
	for i, p := range s.portfolio {
		p.Client = cloneString(p.Client)
		out[i] = p
	}

	return out, nil
}

// ListTestimonials returns a copy of every testimonial.
func (s *Store) ListTestimonials(_ context.Context) ([]domain.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Testimonial, len(s.testimonials))
	for i, t := range s.testimonials {
		t.AvatarURL = cloneString(t.AvatarURL)
		out[i] = t
	}

	return out, nil
}

// CreateQuoteRequest appends a pending quote request with the next ID.
func (s *Store) CreateQuoteRequest(_ context.Context, in domain.QuoteRequestInput) (*domain.QuoteRequest, error) {
	in.SelectedDesigns = cloneString(in.SelectedDesigns)

	s.mu.Lock()
	s.nextQuoteID++
	qr := domain.NewQuoteRequest(s.nextQuoteID, in, s.now().UTC())
	s.quotes = append(s.quotes, *qr)
	s.mu.Unlock()

	out := *qr
	out.SelectedDesigns = cloneString(qr.SelectedDesigns)

	return &out, nil
}

// SeedCatalog adds entries of c that are not already present.
func (s *Store) SeedCatalog(_ context.Context, c domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seedLocked(c)

	return nil
}

// QuoteRequests returns every stored quote request in creation order.
func (s *Store) QuoteRequests() []domain.QuoteRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.QuoteRequest, len(s.quotes))
	for i, q := range s.quotes {
		q.SelectedDesigns = cloneString(q.SelectedDesigns)
		out[i] = q
	}

	return out
}

// ListQuoteRequests is QuoteRequests with the signature of the database store.
func (s *Store) ListQuoteRequests(_ context.Context) ([]domain.QuoteRequest, error) {
	return s.QuoteRequests(), nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return HealthCheckName }

// Check implements ports.HealthChecker. The in-memory store is always ready.
func (s *Store) Check(_ context.Context) error { return nil }

func (s *Store) seedLocked(c domain.Catalog) {
	for _, svc := range c.Services {
		if slices.ContainsFunc(s.services, func(e domain.Service) bool { return e.Name == svc.Name }) {
			continue
		}

		s.nextServiceID++
		svc.ID = s.nextServiceID
		s.services = append(s.services, svc)
	}

	for _, item := range c.Portfolio {
		if slices.ContainsFunc(s.portfolio, func(e domain.PortfolioItem) bool { return e.Title == item.Title }) {
			continue
		}

		s.nextPortfolioID++
		item.ID = s.nextPortfolioID
		item.Client = cloneString(item.Client)
		s.portfolio = append(s.portfolio, item)
	}

	for _, t := range c.Testimonials {
		if slices.ContainsFunc(s.testimonials, func(e domain.Testimonial) bool { return e.Name == t.Name }) {
			continue
		}

		s.nextTestimonialID++
		t.ID = s.nextTestimonialID
		t.AvatarURL = cloneString(t.AvatarURL)
		s.testimonials = append(s.testimonials, t)
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
