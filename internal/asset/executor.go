package asset

import (
	"context"
	"log/slog"

	"portfolio/internal/storage"
)

// Report is the outcome of a cleanup pass. A failed delete leaves a
// leaked object behind, which is a resource leak but never a correctness
// violation, so failures are non-fatal.
type Report struct {
	Deleted []Reference
	Failed  []FailedDelete
}

type FailedDelete struct {
	Ref Reference
	Err error
}

// Executor deletes orphaned stored objects. It must only run after the
// record update or delete that stopped referencing them has been
// confirmed persisted.
type Executor struct {
	store storage.ObjectStore
}

func NewExecutor(store storage.ObjectStore) *Executor {
	return &Executor{store: store}
}

// Reconcile deletes every orphaned reference. Each attempt is
// independent, one failure does not block the others.
func (e *Executor) Reconcile(ctx context.Context, orphans []Reference) Report {
	var report Report

	for _, ref := range orphans {
		err := e.store.Delete(ctx, ref.Bucket, ref.Key)
		if err != nil {
			slog.Warn("failed to delete orphaned object",
				"bucket", ref.Bucket,
				"key", ref.Key,
				"error", err,
			)
			report.Failed = append(report.Failed, FailedDelete{Ref: ref, Err: err})
			continue
		}

		report.Deleted = append(report.Deleted, ref)
	}

	return report
}
