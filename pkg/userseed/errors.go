package userseed

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the existing file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnsupportedPasswordMode indicates an unknown PasswordMode.
var ErrUnsupportedPasswordMode = errors.New("unsupported password mode")

// ErrClosed indicates use of a Store after Close.
var ErrClosed = errors.New("store is closed")

// SeedError represents a failure at one stage of seeding a workbook.
type SeedError struct {
	Path  string
	Stage string // "stat", "create", "open", "sheet", "write", "hash", "save"
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed %s failed at %s: %v", e.Path, e.Stage, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// NewSeedError creates a new SeedError.
func NewSeedError(path, stage string, err error) *SeedError {
	return &SeedError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
