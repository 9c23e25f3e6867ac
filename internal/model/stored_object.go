package model

import "time"

const (
	StoredObjectTypeImage = "image"
	StoredObjectTypePDF   = "pdf"
)

// StoredObject describes one object in a storage bucket, as surfaced by
// the admin file manager.
type StoredObject struct {
	Key       string    `json:"name"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
