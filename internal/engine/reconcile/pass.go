package reconcile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
)

// slotOutcome is the result of probing a single staged bundle. The err
// field is set only for indeterminate outcomes.
type slotOutcome struct {
	status ports.ProbeResult
	err    error
}

// Pass is a running reconciliation pass. It is created by Engine.Start
// and resolves exactly once.
type Pass struct {
	// ID identifies the pass in logs and traces.
	ID uuid.UUID

	staged []domain.StagedBundle
	slots  []slotOutcome
	done   chan struct{}
	report *Report
}

// Done returns a channel that is closed when the pass has finished.
func (p *Pass) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the pass has finished and returns its report.
func (p *Pass) Wait() *Report {
	<-p.done
	return p.report
}

// seal turns the collected slot outcomes into the final report,
// publishes it and signals completion. It must be called exactly once.
func (p *Pass) seal(ctxErr error) *Report {
	report := &Report{Pass: p.ID, Err: ctxErr}
	for i, outcome := range p.slots {
		switch outcome.status {
		case ports.ProbeNotFound:
			report.NeedsUpload = append(report.NeedsUpload, p.staged[i])
		case ports.ProbeFound:
			report.Found = append(report.Found, p.staged[i])
		default:
			report.Unresolved = append(report.Unresolved, outcome.err)
		}
	}

	// The report must be visible before Done observers wake up.
	p.report = report
	close(p.done)
	return report
}

// Report is the outcome of a reconciliation pass. NeedsUpload and
// Found preserve the input order of the staged bundles.
type Report struct {
	// Pass is the ID of the pass that produced this report.
	Pass uuid.UUID

	// NeedsUpload lists staged bundles missing from the remote store.
	NeedsUpload []domain.StagedBundle

	// Found lists staged bundles already present in the remote store.
	Found []domain.StagedBundle

	// Unresolved carries one error per staged bundle whose remote
	// existence could not be determined.
	Unresolved []error

	// Err is non-nil when the pass was abandoned before every staged
	// bundle was probed, typically due to cancellation.
	Err error
}

// Summary renders the report as a short human-readable block, one line
// per unresolved bundle after the headline.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pass %s: %d to upload, %d already remote, %d unresolved",
		r.Pass, len(r.NeedsUpload), len(r.Found), len(r.Unresolved))
	if r.Err != nil {
		fmt.Fprintf(&b, " (aborted: %v)", r.Err)
	}
	for _, err := range r.Unresolved {
		fmt.Fprintf(&b, "\n  %v", err)
	}
	return b.String()
}
