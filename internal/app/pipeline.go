package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/studio-site/internal/platform/logging"
)

// Intake pipeline: Validate → Notify → Persist → Respond
//
//  1. VALIDATE - reject malformed input before anything else happens
//  2. NOTIFY   - tell the studio; failure is logged and the run continues
//  3. PERSIST  - store the record; failure ends the run
//  4. RESPOND  - shape the result for the caller
//
// Notify always runs before Persist, so a request can be announced to the
// studio and still fail to be stored.

// PipelineStep names a stage of the intake pipeline.
type PipelineStep string

const (
	StepValidate PipelineStep = "validate"
	StepNotify   PipelineStep = "notify"
	StepPersist  PipelineStep = "persist"
	StepRespond  PipelineStep = "respond"
)

// PipelineError records the step where a run stopped.
type PipelineError struct {
	Step  PipelineStep
	Cause error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Executor runs pipelines with consistent logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Pipeline holds the functions for each step. Nil steps are skipped.
type Pipeline[I, P, O any] struct {
	// Name identifies the pipeline in logs.
	Name string

	Validate func(ctx context.Context, input I) error

	// Notify is best effort. Its error goes to OnNotifyFailure and the
	// run carries on.
	Notify          func(ctx context.Context, input I) error
	OnNotifyFailure func(ctx context.Context, input I, err error)

	Persist func(ctx context.Context, input I) (P, error)
	Respond func(ctx context.Context, input I, persisted P) (O, error)
}

// Run drives input through p. The returned error is a *PipelineError
// wrapping whatever the failing step returned.
func Run[I, P, O any](ctx context.Context, exec *Executor, p Pipeline[I, P, O], input I) (O, error) {
	var zero O

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("pipeline", p.Name))
	start := time.Now()

	if p.Validate != nil {
		if err := p.Validate(ctx, input); err != nil {
			logger.DebugContext(ctx, "validation failed", slog.Any("error", err))
			return zero, &PipelineError{Step: StepValidate, Cause: err}
		}
	}

	if p.Notify != nil {
		if err := p.Notify(ctx, input); err != nil {
			logger.WarnContext(ctx, "notification failed, continuing", slog.Any("error", err))

			if p.OnNotifyFailure != nil {
				p.OnNotifyFailure(ctx, input, err)
			}
		}
	}

	var persisted P

	if p.Persist != nil {
		var err error

		persisted, err = p.Persist(ctx, input)
		if err != nil {
			logger.ErrorContext(ctx, "persist failed", slog.Any("error", err))
			return zero, &PipelineError{Step: StepPersist, Cause: err}
		}
	}

	var result O

	if p.Respond != nil {
		var err error

		result, err = p.Respond(ctx, input, persisted)
		if err != nil {
			return zero, &PipelineError{Step: StepRespond, Cause: err}
		}
	}

	logger.InfoContext(ctx, "pipeline completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// FailedStep reports the step a pipeline error came from.
func FailedStep(err error) (PipelineStep, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Step, true
	}

	return "", false
}
