// Package asset coordinates the lifecycle of uploaded files across the
// profile, project and certificate records: upload, URL derivation,
// select-or-replace merging, and orphan cleanup. The ordering contract is
// store-before-persist, persist-before-cleanup: a stored object is never
// deleted while any record field still names it.
package asset

import (
	"slices"

	"portfolio/internal/storage"
)

// Plan is the outcome of resolving an update against a record's current
// asset fields: the final field values to persist and the references that
// become orphaned once the persist succeeds.
type Plan struct {
	Fields  map[string][]string
	Orphans []Reference
}

// FieldValue flattens a single-file slot's final value to a string.
func (p Plan) FieldValue(field string) string {
	values := p.Fields[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Resolver decides, for a given update, which stored objects are newly
// referenced, which become orphaned, and which are unchanged.
type Resolver struct {
	store storage.ObjectStore
}

func NewResolver(store storage.ObjectStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve merges the incoming changes with the record's current asset
// fields. A field with no change entry keeps its stored value. A cleared
// or replaced field marks its previous values as orphan candidates.
//
// A candidate is finalized as an orphan only if no field in the merged
// result still references the same URL (the same object may be reused
// across two slots, the data model does not prevent it) and only if the
// URL resolves to a key in a managed bucket. Manually entered external
// links are never eligible for deletion.
func (r *Resolver) Resolve(schema Schema, current map[string][]string, changes map[string]Change) Plan {
	fields := make(map[string][]string, len(schema))
	var candidates []string

	for _, slot := range schema {
		cur := current[slot.Field]
		change := changes[slot.Field]

		switch change.kind {
		case changeNone:
			fields[slot.Field] = cur
		case changeClear:
			fields[slot.Field] = nil
			candidates = append(candidates, cur...)
		case changeReplace:
			next := make([]string, 0, len(change.refs))
			for _, ref := range change.refs {
				next = append(next, ref.URL)
			}
			fields[slot.Field] = next

			for _, url := range cur {
				if !slices.Contains(next, url) {
					candidates = append(candidates, url)
				}
			}
		}
	}

	// Everything still referenced after the merge stays alive, regardless
	// of which slot the candidate came from.
	referenced := make(map[string]bool)
	for _, values := range fields {
		for _, url := range values {
			referenced[url] = true
		}
	}

	seen := make(map[string]bool)
	var orphans []Reference
	for _, url := range candidates {
		if url == "" || referenced[url] || seen[url] {
			continue
		}
		seen[url] = true

		bucket, key, ok := r.store.KeyForURL(url)
		if !ok {
			continue
		}
		orphans = append(orphans, Reference{Bucket: bucket, Key: key, URL: url})
	}

	return Plan{Fields: fields, Orphans: orphans}
}

// References resolves every managed object a record's asset fields hold,
// used when deleting a record to collect its full cleanup set.
func (r *Resolver) References(schema Schema, current map[string][]string) []Reference {
	plan := r.Resolve(schema, current, clearAll(schema))
	return plan.Orphans
}

func clearAll(schema Schema) map[string]Change {
	changes := make(map[string]Change, len(schema))
	for _, slot := range schema {
		changes[slot.Field] = Clear()
	}
	return changes
}
