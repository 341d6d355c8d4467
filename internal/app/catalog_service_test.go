package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/mocks"
)

func TestNewCatalogService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { NewCatalogService(nil, nil) })
}

func TestCatalogService_Portfolio(t *testing.T) {
	catalog := domain.DefaultCatalog()

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "empty returns all", category: "", expected: []string{"EcoBrand Identity", "Fintech App UI", "Minimalist Posters"}},
		{name: "all returns all", category: "ALL", expected: []string{"EcoBrand Identity", "Fintech App UI", "Minimalist Posters"}},
		{name: "single category", category: "uiux", expected: []string{"Fintech App UI"}},
		{name: "case insensitive", category: " Branding ", expected: []string{"EcoBrand Identity"}},
		{name: "unknown category", category: "print", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockDataStore(t)
			store.EXPECT().ListPortfolio(mock.Anything).Return(catalog.Portfolio, nil).Once()

			svc := NewCatalogService(store, discardLogger())

			items, err := svc.Portfolio(context.Background(), tt.category)
			require.NoError(t, err)

			titles := make([]string, 0, len(items))
			for _, item := range items {
				titles = append(titles, item.Title)
			}

			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestCatalogService_PassThroughErrors(t *testing.T) {
	storageErr := domain.NewStorageError("list services", errors.New("timeout"))

	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListServices(mock.Anything).Return(nil, storageErr).Once()
	store.EXPECT().ListTestimonials(mock.Anything).Return(nil, storageErr).Once()
	store.EXPECT().ListPortfolio(mock.Anything).Return(nil, storageErr).Once()

	svc := NewCatalogService(store, discardLogger())
	ctx := context.Background()

	_, err := svc.Services(ctx)
	require.ErrorIs(t, err, domain.ErrStorage)

	_, err = svc.Testimonials(ctx)
	require.ErrorIs(t, err, domain.ErrStorage)

	_, err = svc.Portfolio(ctx, "branding")
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestCatalogService_Content(t *testing.T) {
	catalog := domain.DefaultCatalog()

	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListServices(mock.Anything).Return(catalog.Services, nil).Once()
	store.EXPECT().ListPortfolio(mock.Anything).Return(catalog.Portfolio, nil).Once()
	store.EXPECT().ListTestimonials(mock.Anything).Return(catalog.Testimonials, nil).Once()

	svc := NewCatalogService(store, discardLogger())

	content, err := svc.Content(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog, content)
}

func TestCatalogService_Content_FirstErrorWins(t *testing.T) {
	storageErr := domain.NewStorageError("list portfolio", errors.New("broken pipe"))

	store := mocks.NewMockDataStore(t)
	store.EXPECT().ListServices(mock.Anything).Return([]domain.Service{}, nil).Maybe()
	store.EXPECT().ListPortfolio(mock.Anything).Return(nil, storageErr).Once()
	store.EXPECT().ListTestimonials(mock.Anything).Return([]domain.Testimonial{}, nil).Maybe()

	svc := NewCatalogService(store, discardLogger())

	content, err := svc.Content(context.Background())

	require.ErrorIs(t, err, domain.ErrStorage)
	assert.True(t, content.Empty())
}
