// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages. This enables better error categorization and
// user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures
// appropriately.
package errors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// EmptyBuffer indicates the input buffer was never filled.
	EmptyBuffer Kind = "empty_buffer"
	// InvalidBuffer indicates the buffered line is empty after trimming.
	InvalidBuffer Kind = "invalid_buffer"
	// UnrecognizedMetaCommand indicates a dot-prefixed line that matches no
	// known meta-command literal.
	UnrecognizedMetaCommand Kind = "unrecognized_meta_command"
	// UnrecognizedQuery indicates a line that matches no known query keyword.
	UnrecognizedQuery Kind = "unrecognized_query"
	// NoCommand indicates dispatch was attempted on an empty command slot.
	NoCommand Kind = "no_command"
	// InputFailed indicates an I/O failure while reading the input stream.
	InputFailed Kind = "input_failed"
	// EndOfInput indicates the input stream closed before an exit directive.
	EndOfInput Kind = "end_of_input"
)

// E wraps an error with kind and human-friendly message.
// Input carries the offending line for classification failures.
type E struct {
	Kind    Kind
	Message string
	Input   string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// WithInput builds a classification error that records the offending line.
func WithInput(kind Kind, msg, input string) *E {
	return &E{Kind: kind, Message: msg, Input: input}
}

// KindOf returns the kind of err, or the empty Kind for untyped errors.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
