package ledger

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"ledger/pkg/domain"
)

// RollupJobArgs contains the arguments for a monthly rollup job submitted to
// River. The user and month form the unique key so that a burst of writes to
// the same month collapses into a single recomputation.
type RollupJobArgs struct {
	// UserID identifies whose rollup to recompute.
	UserID domain.UserID `json:"user_id" river:"unique"`
	// Month is the first day of the month to recompute, truncated to UTC midnight.
	Month time.Time `json:"month" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// debouncePeriod defines the lookback window during which a job with the
	// same user and month is considered a duplicate across the specified states.
	debouncePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the rollup worker.
func (args RollupJobArgs) Kind() string { return "MonthlyRollupJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints that
// deduplicate rollups for the same user and month.
func (args RollupJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per (user, month) in any active
		// state. Completed is deliberately not in the list: a write landing
		// after the month's rollup already finished must insert a fresh job,
		// otherwise the stored totals would miss that write until some later
		// one falls into a new period bucket.
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.debouncePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
