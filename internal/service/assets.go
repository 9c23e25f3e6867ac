package service

import (
	"context"
	"log/slog"

	"portfolio/internal/asset"
)

// assetOps bundles the asset lifecycle components with an entity's slot
// schema. Every entity service embeds one, the profile/project/
// certificate flows differ only in schema and record shape.
type assetOps struct {
	coordinator *asset.Coordinator
	resolver    *asset.Resolver
	executor    *asset.Executor
	schema      asset.Schema
}

// storeSlots uploads the incoming files per slot and translates each slot
// input into its resolver change. Uploads happen before any persist. On
// failure, anything already stored in this call is cleaned up best-effort
// before returning, no record references it yet.
func (a *assetOps) storeSlots(ctx context.Context, inputs map[string]FileInput) (map[string]asset.Change, []asset.Reference, error) {
	changes := make(map[string]asset.Change, len(inputs))
	var uploaded []asset.Reference

	for field, input := range inputs {
		slot, ok := a.schema.Slot(field)
		if !ok {
			continue
		}

		switch {
		case len(input.Uploads) > 0:
			refs, err := a.coordinator.Store(ctx, slot, input.Uploads)
			if err != nil {
				a.cleanupUploads(ctx, append(uploaded, refs...))
				return nil, nil, err
			}
			changes[field] = asset.Replace(refs...)
			uploaded = append(uploaded, refs...)
		case input.Clear:
			changes[field] = asset.Clear()
		}
	}

	return changes, uploaded, nil
}

// cleanupUploads best-effort deletes objects that were stored but never
// referenced by a persisted record. Failures leak the objects and are
// only logged.
func (a *assetOps) cleanupUploads(ctx context.Context, refs []asset.Reference) {
	if len(refs) == 0 {
		return
	}
	report := a.executor.Reconcile(ctx, refs)
	if len(report.Failed) > 0 {
		slog.Error("failed to clean up unreferenced uploads", "failed", len(report.Failed))
	}
}

func merged(current string, incoming *string) string {
	if incoming == nil {
		return current
	}
	return *incoming
}

func urlValues(url string) []string {
	if url == "" {
		return nil
	}
	return []string{url}
}
