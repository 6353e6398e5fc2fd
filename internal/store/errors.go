package store

import "errors"

var (
	// ErrHandleNotFound is returned for handles that were never issued or
	// have already been revoked.
	ErrHandleNotFound = errors.New("blob handle not found")

	ErrSavingFile      = errors.New("failed to save file")
	ErrCreatingDir     = errors.New("failed to create directory")
	ErrEmptyArchiveDir = errors.New("archive directory is not configured")
)
