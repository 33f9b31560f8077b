// Package terminal provides utilities for terminal operations such as
// clearing the screen and querying the terminal state.
package terminal

import (
	"fmt"
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// Width returns the current terminal width in columns.
// It defaults to 80 when the size cannot be determined, for example when
// stdout is not attached to a terminal.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// IsInteractive reports whether stdin is attached to a terminal.
// The shell suppresses the prompt and banner when input is piped.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ClearScreen erases the visible terminal contents and homes the cursor.
// The cursor is hidden during the redraw to avoid flicker.
func ClearScreen() {
	cursor.Hide()
	fmt.Print("\x1b[H\x1b[2J")
	cursor.Show()
}
