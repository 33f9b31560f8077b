package logging

import (
	stderrors "errors"
	"testing"

	"sqlshell/cli/internal/errors"
)

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "empty buffer",
			err:      errors.New(errors.EmptyBuffer, "input buffer is empty"),
			expected: "Input buffer is empty.",
		},
		{
			name:     "invalid buffer",
			err:      errors.New(errors.InvalidBuffer, "invalid input buffer"),
			expected: "Invalid input buffer.",
		},
		{
			name:     "unrecognized meta-command",
			err:      errors.WithInput(errors.UnrecognizedMetaCommand, "unrecognized meta-command", ".frobnicate"),
			expected: "Unrecognized command: '.frobnicate'.",
		},
		{
			name:     "unrecognized query",
			err:      errors.WithInput(errors.UnrecognizedQuery, "unrecognized query", "drop table t"),
			expected: "Unrecognized query: 'drop table t'.",
		},
		{
			name:     "empty command slot",
			err:      errors.New(errors.NoCommand, "unrecognized command"),
			expected: "Error executing command: unrecognized command",
		},
		{
			name:     "untyped error",
			err:      stderrors.New("boom"),
			expected: "boom",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diagnostic(tt.err); got != tt.expected {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPresentError(t *testing.T) {
	err := errors.New(errors.InputFailed, "reading input")
	got := PresentError("Error reading input", err)
	if got != "Error reading input: input_failed: reading input" {
		t.Errorf("PresentError() = %q", got)
	}
	if PresentError("context", nil) != "" {
		t.Error("PresentError(nil) should be empty")
	}
}
