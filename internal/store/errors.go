package store

import (
	"errors"
	"fmt"
)

// StorageError reports an unreadable or malformed persisted collection.
// It is never fatal to the process; the failed operation is aborted and the
// error is surfaced to the caller instead of falling back to an empty
// collection.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: collection %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
