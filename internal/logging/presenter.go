// Package logging formats errors for user display. Classification and
// execution failures become fixed one-line diagnostics; everything else is
// presented with its context.
package logging

import (
	stderrors "errors"
	"fmt"

	"sqlshell/cli/internal/errors"
)

// Diagnostic converts a classification or execution error into the
// one-line message the shell prints on stderr. Untyped errors fall back
// to their plain Error text.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var e *errors.E
	if !stderrors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case errors.EmptyBuffer:
		return "Input buffer is empty."
	case errors.InvalidBuffer:
		return "Invalid input buffer."
	case errors.UnrecognizedMetaCommand:
		return fmt.Sprintf("Unrecognized command: '%s'.", e.Input)
	case errors.UnrecognizedQuery:
		return fmt.Sprintf("Unrecognized query: '%s'.", e.Input)
	case errors.NoCommand:
		return "Error executing command: unrecognized command"
	default:
		return e.Error()
	}
}

// PresentError formats an error for user display with its context.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, err)
}
