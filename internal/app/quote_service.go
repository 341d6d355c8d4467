// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/platform/telemetry"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// IntakeRecorder counts quote submissions. *telemetry.IntakeMetrics
// satisfies it.
type IntakeRecorder interface {
	QuoteSubmitted(ctx context.Context, outcome string)
	NotificationFailed(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) QuoteSubmitted(context.Context, string) {}
func (nopRecorder) NotificationFailed(context.Context)     {}

// QuoteService accepts quote requests from site visitors.
type QuoteService struct {
	store    ports.DataStore
	notifier ports.QuoteNotifier
	metrics  IntakeRecorder
	executor *Executor
	logger   *slog.Logger
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Store    ports.DataStore
	Notifier ports.QuoteNotifier

	// Metrics is optional.
	Metrics IntakeRecorder
	Logger  *slog.Logger
}

// NewQuoteService creates a quote service. It panics if Store or Notifier
// is nil, since the service cannot work without either.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	if cfg.Notifier == nil {
		panic("app: QuoteServiceConfig.Notifier is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var metrics IntakeRecorder = nopRecorder{}
	if cfg.Metrics != nil {
		metrics = cfg.Metrics
	}

	return &QuoteService{
		store:    cfg.Store,
		notifier: cfg.Notifier,
		metrics:  metrics,
		executor: NewExecutor(logger),
		logger:   logger,
	}
}

// SubmitQuote validates in, notifies the studio and stores the request.
//
// A notification failure is logged and counted but never returned. The
// returned error wraps a *domain.ValidationError when in is incomplete and
// a *domain.StorageError when the store rejects the write.
//
// The steps run detached from ctx cancellation so a client that hangs up
// after the email went out still gets its request stored.
func (s *QuoteService) SubmitQuote(ctx context.Context, in domain.QuoteRequestInput) (*domain.QuoteRequest, error) {
	ctx = context.WithoutCancel(ctx)

	qr, err := Run(ctx, s.executor, s.pipeline(), in)

	s.metrics.QuoteSubmitted(ctx, outcomeOf(err))

	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote request submitted",
		slog.Int64("quote_id", qr.ID),
		slog.String("project_type", qr.ProjectType),
		slog.Any("designs", in.Designs()),
	)

	return qr, nil
}

func (s *QuoteService) pipeline() Pipeline[domain.QuoteRequestInput, *domain.QuoteRequest, *domain.QuoteRequest] {
	return Pipeline[domain.QuoteRequestInput, *domain.QuoteRequest, *domain.QuoteRequest]{
		Name: "submit_quote",
		Validate: func(_ context.Context, in domain.QuoteRequestInput) error {
			return in.Validate()
		},
		Notify: s.notifier.SendQuoteEmail,
		OnNotifyFailure: func(ctx context.Context, in domain.QuoteRequestInput, err error) {
			s.metrics.NotificationFailed(ctx)
			s.logger.WarnContext(ctx, "quote notification not delivered",
				slog.String("name", in.Name),
				slog.Any("error", err),
			)
		},
		Persist: s.store.CreateQuoteRequest,
		Respond: func(_ context.Context, _ domain.QuoteRequestInput, qr *domain.QuoteRequest) (*domain.QuoteRequest, error) {
			return qr, nil
		},
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeCreated
	case domain.IsValidation(err):
		return telemetry.OutcomeValidationError
	default:
		return telemetry.OutcomeStorageError
	}
}
