// Package apperr classifies run-aborting errors so the CLI can map each kind
// to a distinct process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an aborted run.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig       // missing/malformed config key
	KindConnection   // terminal unreachable or init failed
	KindTimeframe    // unknown timeframe label
	KindFetch        // a batch/range request failed
	KindMalformedBar // a record failed the finite/non-negative checks
	KindWrite        // output file could not be written
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConnection:
		return "connection"
	case KindTimeframe:
		return "timeframe"
	case KindFetch:
		return "fetch"
	case KindMalformedBar:
		return "malformed_bar"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// ExitCode maps a Kind to the process exit code.
func (k Kind) ExitCode() int {
	switch k {
	case KindConfig:
		return 2
	case KindConnection:
		return 3
	case KindTimeframe:
		return 4
	case KindFetch:
		return 5
	case KindMalformedBar:
		return 6
	case KindWrite:
		return 7
	default:
		return 1
	}
}

// Error carries a Kind alongside the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given kind. Returns nil when err is nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Errorf formats a new error of the given kind. Supports %w.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode returns the exit code for err: 0 for nil, otherwise the code of
// its kind (1 for unclassified errors).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
