//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/studio-site/internal/adapters/http/dto"
)

func postQuote(ctx context.Context, client *http.Client, baseURL string, i int) (*dto.QuoteCreatedResponse, int, error) {
	body := fmt.Sprintf(`{"name":"Visitor %d","email":"v%d@example.com","projectType":"custom","message":"Request %d"}`, i, i, i)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/quotes", strings.NewReader(body))
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var created dto.QuoteCreatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, resp.StatusCode, err
	}

	return &created, resp.StatusCode, nil
}

// TestConcurrent_QuoteSubmissions verifies that concurrent submissions each
// get their own ID and are all stored, on both store variants.
func TestConcurrent_QuoteSubmissions(t *testing.T) {
	const numGoroutines = 25

	for variant, s := range startSites(t) {
		t.Run(variant, func(t *testing.T) {
			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				ids      = make(map[int64]bool, numGoroutines)
				failures int32
			)

			for i := range numGoroutines {
				wg.Go(func() {
					created, status, err := postQuote(context.Background(), s.server.Client(), s.server.URL, i)
					if err != nil || status != http.StatusCreated {
						atomic.AddInt32(&failures, 1)
						return
					}

					mu.Lock()
					ids[created.ID] = true
					mu.Unlock()
				})
			}

			wg.Wait()

			assert.Zero(t, atomic.LoadInt32(&failures), "all submissions should succeed")
			assert.Len(t, ids, numGoroutines, "every submission gets a distinct id")
			assert.Equal(t, numGoroutines, s.notifier.count())

			quotes, err := s.store.ListQuoteRequests(context.Background())
			require.NoError(t, err)
			assert.Len(t, quotes, numGoroutines)
		})
	}
}

// TestConcurrent_ReadsDuringWrites verifies catalog reads stay consistent
// while quotes are being written.
func TestConcurrent_ReadsDuringWrites(t *testing.T) {
	for variant, s := range startSites(t) {
		t.Run(variant, func(t *testing.T) {
			var (
				wg         sync.WaitGroup
				badReads   int32
				goodWrites int32
			)

			for i := range 10 {
				wg.Go(func() {
					if _, status, err := postQuote(context.Background(), s.server.Client(), s.server.URL, i); err == nil && status == http.StatusCreated {
						atomic.AddInt32(&goodWrites, 1)
					}
				})

				wg.Go(func() {
					resp, err := s.server.Client().Get(s.server.URL + "/api/content")
					if err != nil {
						atomic.AddInt32(&badReads, 1)
						return
					}
					defer resp.Body.Close()

					var content dto.ContentResponse
					if resp.StatusCode != http.StatusOK ||
						json.NewDecoder(resp.Body).Decode(&content) != nil ||
						len(content.Services) != 4 {
						atomic.AddInt32(&badReads, 1)
					}
				})
			}

			wg.Wait()

			assert.Zero(t, atomic.LoadInt32(&badReads))
			assert.Equal(t, int32(10), atomic.LoadInt32(&goodWrites))
		})
	}
}

// TestConcurrent_ContextCancellation verifies a cancelled client request
// does not leave the site unable to serve.
func TestConcurrent_ContextCancellation(t *testing.T) {
	s := startSites(t)["memory"]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := postQuote(ctx, s.server.Client(), s.server.URL, 0)
	require.Error(t, err)

	created, status, err := postQuote(context.Background(), s.server.Client(), s.server.URL, 1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Positive(t, created.ID)
}
