// Package reconcile implements the reconciliation engine.
//
// A reconciliation pass takes the staged bundle files and determines,
// by probing the remote store concurrently, which of them still need
// to be uploaded. Probes answer found, not-found or indeterminate;
// indeterminate answers are retried with a delay and, if they never
// resolve, reported separately. A file whose existence could not be
// determined is never treated as missing.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// Config tunes a reconciliation pass. The zero value selects the
// package defaults.
type Config struct {
	// Concurrency caps the number of probes in flight at once.
	Concurrency int

	// MaxRetries is the number of additional attempts after an
	// indeterminate probe.
	MaxRetries int

	// RetryDelay is the pause before each retry attempt.
	RetryDelay time.Duration
}

// normalized fills unset fields with the shared defaults.
func (c Config) normalized() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = domain.DefaultConcurrency
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = domain.DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = domain.DefaultRetryDelay
	}
	return c
}

// Engine runs reconciliation passes against a remote store.
type Engine struct {
	probe  ports.ExistenceProbe
	logger ports.Logger
	tracer ports.Tracer
	config Config
}

// NewEngine creates a new Engine with the given dependencies.
func NewEngine(probe ports.ExistenceProbe, logger ports.Logger, tracer ports.Tracer, config Config) *Engine {
	return &Engine{
		probe:  probe,
		logger: logger,
		tracer: tracer,
		config: config.normalized(),
	}
}

// Start launches a reconciliation pass over the staged bundles and
// returns immediately. Probes begin in the background, bounded by the
// configured concurrency. The returned Pass reports completion through
// Done and delivers the report through Wait.
//
// Cancelling ctx abandons in-flight and pending probes; outcomes
// already collected stay in the report.
func (e *Engine) Start(ctx context.Context, staged []domain.StagedBundle) *Pass {
	pass := &Pass{
		ID:     uuid.Must(uuid.NewV7()),
		staged: staged,
		slots:  make([]slotOutcome, len(staged)),
		done:   make(chan struct{}),
	}

	ctx, span := e.tracer.Start(ctx, "reconcile")
	span.SetAttribute("pass", pass.ID.String())
	span.SetAttribute("staged", len(staged))

	fileNames := make([]string, len(staged))
	for i, bundle := range staged {
		fileNames[i] = bundle.FileName()
	}
	e.tracer.EmitPlan(ctx, fileNames)

	e.logger.Info(fmt.Sprintf("reconciliation pass %s: probing %d staged bundles", pass.ID, len(staged)))

	go e.run(ctx, span, pass)
	return pass
}

// Reconcile is the blocking form of Start.
func (e *Engine) Reconcile(ctx context.Context, staged []domain.StagedBundle) *Report {
	return e.Start(ctx, staged).Wait()
}

// run drives the worker pool and seals the pass when every slot is
// resolved or abandoned.
func (e *Engine) run(ctx context.Context, span ports.Span, pass *Pass) {
	defer span.End()

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Concurrency)

	for i := range pass.staged {
		g.Go(func() error {
			// Outcomes land in per-input slots, so workers share no
			// state and input order survives into the report.
			pass.slots[i] = e.probeWithRetry(groupCtx, pass.staged[i])
			return nil
		})
	}
	_ = g.Wait()

	report := pass.seal(ctx.Err())

	span.SetAttribute("needs_upload", len(report.NeedsUpload))
	span.SetAttribute("found", len(report.Found))
	span.SetAttribute("unresolved", len(report.Unresolved))
	if report.Err != nil {
		span.RecordError(report.Err)
	}
}

// probeWithRetry resolves a single staged bundle, retrying
// indeterminate probes up to the configured bound.
func (e *Engine) probeWithRetry(ctx context.Context, staged domain.StagedBundle) slotOutcome {
	fileName := staged.FileName()
	attempts := e.config.MaxRetries + 1

	var lastCause error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return slotOutcome{status: ports.ProbeIndeterminate, err: e.unresolved(fileName, attempt-1, err)}
		}

		status, err := e.probe.Probe(ctx, fileName)
		if status == ports.ProbeFound || status == ports.ProbeNotFound {
			return slotOutcome{status: status}
		}
		lastCause = err

		if attempt == attempts {
			break
		}
		e.logger.Warn(fmt.Sprintf("probe indeterminate for %s (attempt %d/%d), retrying in %s",
			fileName, attempt, attempts, e.config.RetryDelay))

		select {
		case <-time.After(e.config.RetryDelay):
		case <-ctx.Done():
			return slotOutcome{status: ports.ProbeIndeterminate, err: e.unresolved(fileName, attempt, ctx.Err())}
		}
	}

	return slotOutcome{status: ports.ProbeIndeterminate, err: e.unresolved(fileName, attempts, lastCause)}
}

// unresolved builds the error recorded for a staged bundle whose
// remote existence could not be determined. The result matches both
// domain.ErrProbeIndeterminate and the probe cause under errors.Is.
func (e *Engine) unresolved(fileName string, attempts int, cause error) error {
	err := errors.Join(domain.ErrProbeIndeterminate, cause)
	err = zerr.With(err, "file", fileName)
	return zerr.With(err, "attempts", attempts)
}
