package asset

import "fmt"

// PersistError reports a record persist that failed after new objects
// were already stored. The uploaded references are immediate orphans: no
// record names them, and the caller is expected to clean them up
// best-effort.
type PersistError struct {
	Uploaded []Reference
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("record persist failed with %d newly stored objects orphaned: %v", len(e.Uploaded), e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
