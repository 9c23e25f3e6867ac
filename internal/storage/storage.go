package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrStoreUnavailable = errors.New("object store unavailable")
)

// Object is a stored object reference: its bucket, key, and derived public URL.
type Object struct {
	Bucket string
	Key    string
	URL    string
}

// ObjectInfo describes an object returned by List.
type ObjectInfo struct {
	Key       string
	Size      int64
	CreatedAt time.Time
}

// ObjectStore defines the interface for bucket-oriented object storage.
type ObjectStore interface {
	// Put stores body under bucket/key and returns the durable reference.
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) (Object, error)

	// Delete removes bucket/key. Deleting a missing object is not an error.
	Delete(ctx context.Context, bucket, key string) error

	// List returns a single page of objects under prefix, at most limit entries.
	// The listing is not restartable.
	List(ctx context.Context, bucket, prefix string, limit int) ([]ObjectInfo, error)

	// PublicURL derives the public URL for bucket/key. No network call.
	PublicURL(bucket, key string) string

	// KeyForURL resolves a URL back to a managed bucket and key. ok is false
	// for URLs that do not belong to this store, such URLs must never be
	// deleted on the caller's behalf.
	KeyForURL(rawURL string) (bucket, key string, ok bool)
}

// NewKey generates a collision-free object key that keeps the original
// filename as a human-readable suffix.
func NewKey(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return uuid.New().String() + "-" + base
}
