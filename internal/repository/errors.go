package repository

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrCertificateNotFound = errors.New("certificate not found")

	// ErrConflict is reserved for a future version/etag check on update.
	// Concurrent updates currently race last-write-wins.
	ErrConflict = errors.New("record conflict")
)
