package db

import (
	"errors"
	"fmt"
)

// StorageError reports that the database was unavailable or rejected a write.
// It is returned for every failed store operation.
type StorageError struct {
	Op  string // operation, e.g. "create", "open"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// wrap turns a gorm error into a StorageError, passing through ones that
// already are.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsStorageError(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
