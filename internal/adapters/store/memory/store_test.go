package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }
}

func TestNew_PrepopulatedWithDefaultCatalog(t *testing.T) {
	s := New()
	ctx := context.Background()

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 4)
	assert.Equal(t, "Graphic Design", services[0].Name)
	assert.Equal(t, int64(1), services[0].ID)
	assert.Equal(t, int64(4), services[3].ID)

	portfolio, err := s.ListPortfolio(ctx)
	require.NoError(t, err)
	require.Len(t, portfolio, 3)
	assert.Equal(t, "EcoBrand Identity", portfolio[0].Title)

	testimonials, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 2)
	assert.Equal(t, "Sarah Johnson", testimonials[0].Name)
}

func TestWithCatalog_ReplacesContent(t *testing.T) {
	s := New(WithCatalog(domain.Catalog{}))

	services, err := s.ListServices(context.Background())

	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestListings_ReturnCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	services, _ := s.ListServices(ctx)
	services[0].Name = "mutated"

	portfolio, _ := s.ListPortfolio(ctx)
	*portfolio[0].Client = "mutated"

	testimonials, _ := s.ListTestimonials(ctx)
	*testimonials[0].AvatarURL = "mutated"

	services, _ = s.ListServices(ctx)
	portfolio, _ = s.ListPortfolio(ctx)
	testimonials, _ = s.ListTestimonials(ctx)

	assert.Equal(t, "Graphic Design", services[0].Name)
	assert.Equal(t, "EcoLife", *portfolio[0].Client)
	assert.Equal(t, "https://i.pravatar.cc/150?u=sarah", *testimonials[0].AvatarURL)
}

func TestCreateQuoteRequest(t *testing.T) {
	s := New(WithClock(fixedClock()))
	designs := "EcoBrand Identity, Fintech App UI"

	in := domain.QuoteRequestInput{
		Name:            "Jane",
		Email:           "jane@example.com",
		ProjectType:     "branding",
		Message:         "Need a logo",
		SelectedDesigns: &designs,
	}

	first, err := s.CreateQuoteRequest(context.Background(), in)
	require.NoError(t, err)

	second, err := s.CreateQuoteRequest(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, domain.QuoteStatusPending, first.Status)
	assert.Equal(t, fixedClock()(), first.CreatedAt)
	require.NotNil(t, first.SelectedDesigns)
	assert.Equal(t, designs, *first.SelectedDesigns)

	// The caller's input and the returned record never alias stored state.
	designs = "changed"
	*first.SelectedDesigns = "changed too"

	stored := s.QuoteRequests()
	require.Len(t, stored, 2)
	assert.Equal(t, "EcoBrand Identity, Fintech App UI", *stored[0].SelectedDesigns)
}

func TestCreateQuoteRequest_NilSelectedDesigns(t *testing.T) {
	s := New()

	qr, err := s.CreateQuoteRequest(context.Background(), domain.QuoteRequestInput{
		Name: "Jane", Email: "jane@example.com", ProjectType: "uiux", Message: "App",
	})

	require.NoError(t, err)
	assert.Nil(t, qr.SelectedDesigns)
}

func TestCreateQuoteRequest_CanceledContextStillStores(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	qr, err := s.CreateQuoteRequest(ctx, domain.QuoteRequestInput{Name: "Jane"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), qr.ID)
	assert.Len(t, s.QuoteRequests(), 1)
}

func TestCreateQuoteRequest_ConcurrentIDsAreUnique(t *testing.T) {
	s := New()

	const n = 50

	var wg sync.WaitGroup

	ids := make(chan int64, n)

	for range n {
		wg.Go(func() {
			qr, err := s.CreateQuoteRequest(context.Background(), domain.QuoteRequestInput{Name: "x"})
			if err == nil {
				ids <- qr.ID
			}
		})
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	assert.Len(t, seen, n)
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	s := New(WithCatalog(domain.Catalog{}))
	ctx := context.Background()

	require.NoError(t, s.SeedCatalog(ctx, domain.DefaultCatalog()))
	require.NoError(t, s.SeedCatalog(ctx, domain.DefaultCatalog()))

	services, _ := s.ListServices(ctx)
	portfolio, _ := s.ListPortfolio(ctx)
	testimonials, _ := s.ListTestimonials(ctx)

	assert.Len(t, services, 4)
	assert.Len(t, portfolio, 3)
	assert.Len(t, testimonials, 2)
}

func TestSeedCatalog_AddsOnlyMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	extra := domain.Catalog{
		Services: []domain.Service{
			{Name: "Branding"},
			{Name: "Motion Design", Category: domain.CategoryCustom},
		},
	}

	require.NoError(t, s.SeedCatalog(ctx, extra))

	services, _ := s.ListServices(ctx)
	require.Len(t, services, 5)
	assert.Equal(t, "Motion Design", services[4].Name)
	assert.Equal(t, int64(5), services[4].ID)
}

func TestHealthCheck(t *testing.T) {
	s := New()

	assert.Equal(t, "store", s.Name())
	assert.NoError(t, s.Check(context.Background()))
}

func TestListQuoteRequests(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateQuoteRequest(ctx, domain.QuoteRequestInput{
		Name: "Jane", Email: "jane@example.com", ProjectType: "branding", Message: "Logo",
	})
	require.NoError(t, err)

	quotes, err := s.ListQuoteRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.QuoteRequests(), quotes)
}
