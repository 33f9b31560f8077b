package input

import (
	"io"
	"strings"
	"testing"

	"sqlshell/cli/internal/errors"
)

func TestTextBeforeFirstRead(t *testing.T) {
	buf := New(strings.NewReader(".exit\n"))

	_, err := buf.Text()
	if err == nil {
		t.Fatal("Text() on an unfilled buffer should fail")
	}
	if kind := errors.KindOf(err); kind != errors.EmptyBuffer {
		t.Errorf("kind = %v, want EmptyBuffer", kind)
	}
}

func TestReadTrimsLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "select\n", "select"},
		{"crlf terminator", ".help\r\n", ".help"},
		{"surrounding whitespace", "  insert 1 a b  \n", "insert 1 a b"},
		{"blank line", "\n", ""},
		{"whitespace only", "   \n", ""},
		{"unterminated final line", ".exit", ".exit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(strings.NewReader(tt.input))
			if err := buf.Read(); err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			got, err := buf.Text()
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadReplacesPreviousLine(t *testing.T) {
	buf := New(strings.NewReader("select\ninsert\n"))

	if err := buf.Read(); err != nil {
		t.Fatalf("first Read() error = %v", err)
	}
	if err := buf.Read(); err != nil {
		t.Fatalf("second Read() error = %v", err)
	}

	got, _ := buf.Text()
	if got != "insert" {
		t.Errorf("Text() = %q, want %q", got, "insert")
	}
}

func TestReadEndOfStream(t *testing.T) {
	buf := New(strings.NewReader(""))

	err := buf.Read()
	if err == nil {
		t.Fatal("Read() on a closed stream should fail")
	}
	if kind := errors.KindOf(err); kind != errors.EndOfInput {
		t.Errorf("kind = %v, want EndOfInput", kind)
	}
}

func TestReadEndOfStreamAfterFinalLine(t *testing.T) {
	buf := New(strings.NewReader("select\n"))

	if err := buf.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if err := buf.Read(); !errors.IsKind(err, errors.EndOfInput) {
		t.Errorf("second Read() = %v, want EndOfInput", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestReadIOFailure(t *testing.T) {
	buf := New(failingReader{})

	err := buf.Read()
	if !errors.IsKind(err, errors.InputFailed) {
		t.Errorf("Read() = %v, want InputFailed", err)
	}
}
