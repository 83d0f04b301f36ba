package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the required base file is missing or unreadable.
	ErrSourceNotFound = errors.New("configuration source not found")
	// ErrParse is returned when a source's contents cannot be parsed.
	ErrParse = errors.New("configuration source is malformed")
	// ErrDeserialize is returned when the merged tree does not fit the target type.
	ErrDeserialize = errors.New("configuration does not match target type")
)

// SourceError reports a failure tied to a single source.
// It matches both its Kind sentinel and the underlying cause with errors.Is.
type SourceError struct {
	Source string
	Kind   error
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Source, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
