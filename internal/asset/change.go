package asset

import (
	"io"

	"portfolio/internal/storage"
)

// Reference is a stored object owned by exactly one record slot: its
// bucket, key, and derived public URL.
type Reference struct {
	Bucket string
	Key    string
	URL    string
}

func refFromObject(obj storage.Object) Reference {
	return Reference{Bucket: obj.Bucket, Key: obj.Key, URL: obj.URL}
}

// Upload is an incoming file destined for a slot.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	File        io.ReadSeeker
}

type changeKind int

const (
	changeNone changeKind = iota
	changeClear
	changeReplace
)

// Change is the tagged update variant for a single asset slot. The zero
// value means "no change": the field's stored value is carried forward.
// Clear is the only way to null a field, an empty string in a payload is
// never silently treated as a no-op.
type Change struct {
	kind changeKind
	refs []Reference
}

// NoChange carries the current value forward unchanged.
func NoChange() Change {
	return Change{}
}

// Clear empties the slot. Previously referenced objects become cleanup
// candidates.
func Clear() Change {
	return Change{kind: changeClear}
}

// Replace sets the slot to the given stored references. Previous values
// not present in refs become cleanup candidates.
func Replace(refs ...Reference) Change {
	return Change{kind: changeReplace, refs: refs}
}

// IsNoChange reports whether the change leaves the slot untouched.
func (c Change) IsNoChange() bool {
	return c.kind == changeNone
}
