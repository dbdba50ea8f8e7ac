package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"

	"ledger/internal/ledger"
	"ledger/pkg/domain"
)

func TestRollupJobArgs_Kind(t *testing.T) {
	if got := (ledger.RollupJobArgs{}).Kind(); got != "MonthlyRollupJob" {
		t.Fatalf("unexpected kind %q", got)
	}
}

func TestRollupJobArgs_UniqueStatesAreActiveOnly(t *testing.T) {
	args := ledger.RollupJobArgs{
		UserID: domain.UserID(uuid.New()),
		Month:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	opts := args.InsertOpts()

	if !opts.UniqueOpts.ByArgs {
		t.Fatalf("expected uniqueness by args")
	}

	states := make(map[rivertype.JobState]bool, len(opts.UniqueOpts.ByState))
	for _, s := range opts.UniqueOpts.ByState {
		states[s] = true
	}

	// a write after the month's rollup completed must enqueue a fresh job, so
	// terminal states must not participate in deduplication
	for _, terminal := range []rivertype.JobState{
		rivertype.JobStateCompleted,
		rivertype.JobStateCancelled,
		rivertype.JobStateDiscarded,
	} {
		if states[terminal] {
			t.Errorf("terminal state %s must not dedupe new rollup jobs", terminal)
		}
	}

	for _, active := range []rivertype.JobState{
		rivertype.JobStateAvailable,
		rivertype.JobStatePending,
		rivertype.JobStateRunning,
		rivertype.JobStateRetryable,
		rivertype.JobStateScheduled,
	} {
		if !states[active] {
			t.Errorf("active state %s missing from unique states", active)
		}
	}
}
