package worker

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"ledger/internal/ledger"
	"ledger/pkg/domain"
	"ledger/pkg/logger"
	"ledger/pkg/storage"
)

// RollupWorker is a River worker that recomputes the monthly rollup for one
// user and month. It rereads the live expense rows for the whole month instead
// of applying a delta, so a rollup is correct no matter how many inserts and
// deletes were collapsed into the one queued job.
//
// The recomputation and the upsert run in a single transaction so the stored
// totals always describe one consistent snapshot of the month.
type RollupWorker struct {
	river.WorkerDefaults[ledger.RollupJobArgs]

	// storage is the persistence layer the totals are read from and the rollup
	// is written to.
	storage storage.Storage
}

// NewRollupWorker constructs a RollupWorker using the provided storage.
func NewRollupWorker(storage storage.Storage) *RollupWorker {
	return &RollupWorker{storage: storage}
}

// Work executes a single rollup job. Jobs with a zero month are malformed and
// are cancelled instead of retried.
func (w *RollupWorker) Work(ctx context.Context, job *river.Job[ledger.RollupJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("month", job.Args.Month))

	if job.Args.Month.IsZero() {
		return river.JobCancel(fmt.Errorf("rollup job without month")) //nolint: wrapcheck
	}

	month := domain.MonthOf(job.Args.Month)
	monthEnd := month.AddDate(0, 1, 0).AddDate(0, 0, -1)

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		totals, err := tx.CategoryTotals(ctx, job.Args.UserID, month, monthEnd)
		if err != nil {
			return fmt.Errorf("could not compute category totals: %w", err)
		}

		rollup := domain.MonthlyRollup{
			UserID:         job.Args.UserID,
			Month:          month,
			CategoryTotals: totals,
		}
		for _, t := range totals {
			rollup.TotalCents += t.TotalCents
		}

		if _, err := tx.UpsertRollup(ctx, rollup); err != nil {
			return fmt.Errorf("could not upsert rollup: %w", err)
		}

		return nil
	}); err != nil {
		logger.Error(ctx, "error recomputing rollup", zap.Error(err))

		return fmt.Errorf("could not recompute rollup: %w", err)
	}

	logger.Info(ctx, "monthly rollup recomputed")

	return nil
}
