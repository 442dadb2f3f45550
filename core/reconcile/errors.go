package reconcile

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Reconcile when the framework rule set is empty.
// Coverage is undefined for zero rules.
var ErrEmptyInput = errors.New("framework rule set is empty")

// SourceUnavailableError reports a transport or filesystem failure while
// reaching one of the inputs.
type SourceUnavailableError struct {
	// Source names the input (URL, path, object or table).
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// MalformedSourceError reports an input that was fetched but cannot be
// interpreted as the expected structure.
type MalformedSourceError struct {
	Source string
	Reason string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed source %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed source %s: %s", e.Source, e.Reason)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// IsSourceUnavailable reports whether err wraps a SourceUnavailableError.
func IsSourceUnavailable(err error) bool {
	var target *SourceUnavailableError
	return errors.As(err, &target)
}

// IsMalformedSource reports whether err wraps a MalformedSourceError.
func IsMalformedSource(err error) bool {
	var target *MalformedSourceError
	return errors.As(err, &target)
}
