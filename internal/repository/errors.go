package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a concurrent writer saved the record first; the
	// caller should re-load and retry the command.
	ErrConflict = errors.New("version conflict")
)
