// Package input owns the shell's line buffer. It is the only component
// that reads from the input stream; everything downstream sees already
// buffered text.
//
// The buffer applies one canonical trimming rule: the line terminator and
// all surrounding whitespace are stripped before the line is stored. The
// classifier never trims.
package input

import (
	"bufio"
	"io"
	"strings"

	"sqlshell/cli/internal/errors"
)

// Buffer reads one line at a time from a stream and retains the most
// recently read line. It is not safe for concurrent use; the shell is
// single-threaded by design.
type Buffer struct {
	reader *bufio.Reader
	line   string
	filled bool
}

// New returns a Buffer reading from r. Production code passes os.Stdin;
// tests pass a strings.Reader.
func New(r io.Reader) *Buffer {
	return &Buffer{reader: bufio.NewReader(r)}
}

// Read blocks until one newline-terminated line is available and stores
// it, replacing the previously buffered line.
//
// A closed stream yields an EndOfInput error and any other I/O failure an
// InputFailed error. Both are transport conditions for the driver to act
// on, never classification results. A final unterminated line before EOF
// is still delivered; the EndOfInput is reported on the following Read.
func (b *Buffer) Read() error {
	line, err := b.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return errors.Wrap(errors.InputFailed, "reading input", err)
		}
		if line == "" {
			return errors.New(errors.EndOfInput, "input stream closed")
		}
	}
	b.line = strings.TrimSpace(line)
	b.filled = true
	return nil
}

// Text returns the buffered line. Before the first successful Read it
// returns an EmptyBuffer error, mirroring a buffer that was never filled.
func (b *Buffer) Text() (string, error) {
	if !b.filled {
		return "", errors.New(errors.EmptyBuffer, "input buffer is empty")
	}
	return b.line, nil
}
