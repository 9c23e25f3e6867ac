package asset

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/storage"
	"portfolio/internal/validation"
)

// Coordinator accepts incoming files for a slot, validates them, stores
// them, and returns the durable references to merge into a record.
type Coordinator struct {
	store      storage.ObjectStore
	maxSize    int64
	putTimeout time.Duration
}

// NewCoordinator builds a coordinator. maxSize <= 0 falls back to the
// default per-file ceiling, putTimeout <= 0 disables the per-put deadline.
func NewCoordinator(store storage.ObjectStore, maxSize int64, putTimeout time.Duration) *Coordinator {
	if maxSize <= 0 {
		maxSize = validation.MaxFileSize
	}
	return &Coordinator{
		store:      store,
		maxSize:    maxSize,
		putTimeout: putTimeout,
	}
}

// Store validates and uploads files for a slot. Every file is validated
// before the first storage call, a validation failure therefore has zero
// side effects.
//
// For multi-file slots each file is stored independently. On partial
// failure the successfully stored subset is returned alongside the error
// so the caller can decide whether to proceed or delete the subset.
func (c *Coordinator) Store(ctx context.Context, slot Slot, uploads []Upload) ([]Reference, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	if !slot.Multi() && len(uploads) > 1 {
		return nil, fmt.Errorf("%w: slot %s accepts a single file", validation.ErrFileInvalid, slot.Field)
	}
	if slot.Multi() && len(uploads) > slot.MaxFiles {
		return nil, fmt.Errorf("%w: slot %s accepts at most %d files", validation.ErrFileInvalid, slot.Field, slot.MaxFiles)
	}

	constraints := c.constraints(slot.Kind)
	for _, up := range uploads {
		err := validation.ValidateFile(up.Filename, up.ContentType, up.Size, up.File, constraints)
		if err != nil {
			return nil, err
		}
	}

	var stored []Reference
	for _, up := range uploads {
		key := storage.NewKey(up.Filename)

		obj, err := c.put(ctx, slot.Bucket, key, up)
		if err != nil {
			return stored, fmt.Errorf("failed to store %s: %w", up.Filename, err)
		}

		stored = append(stored, refFromObject(obj))
	}

	return stored, nil
}

func (c *Coordinator) put(ctx context.Context, bucket, key string, up Upload) (storage.Object, error) {
	if c.putTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.putTimeout)
		defer cancel()
	}
	return c.store.Put(ctx, bucket, key, up.File, up.ContentType)
}

func (c *Coordinator) constraints(kind Kind) validation.FileConstraints {
	constraints := validation.ImageConstraints
	if kind == KindDocument {
		constraints = validation.DocumentConstraints
	}
	constraints.MaxSize = c.maxSize
	return constraints
}
