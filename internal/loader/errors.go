package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates a required column was absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyTable indicates a file with no header row.
	ErrEmptyTable = errors.New("empty table")
)

// LoadError describes a failure to load one of the input tables.
type LoadError struct {
	File   string
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("loading %s: column %q: %v", e.File, e.Column, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
