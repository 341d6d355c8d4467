package ports

import (
	"context"

	"github.com/jsamuelsen/studio-site/internal/domain"
)

// QuoteNotifier tells the studio that a quote request arrived.
//
// Delivery is best effort: callers log a returned error and carry on. No
// retries are attempted by implementations.
type QuoteNotifier interface {
	SendQuoteEmail(ctx context.Context, in domain.QuoteRequestInput) error
}
