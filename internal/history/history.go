// Package history keeps the shell's command history in memory and persists
// it as one entry per line in the XDG state dir. History is best-effort:
// load and save failures never interrupt the shell.
package history

import (
	"bufio"
	"os"
	"path/filepath"

	"sqlshell/cli/internal/xdg"
)

// History holds recent commands, oldest first.
type History struct {
	entries []string
	limit   int
	path    string
}

// New returns a History capped at limit entries, backed by the default
// state file. A non-positive limit falls back to 1000.
func New(limit int) *History {
	if limit <= 0 {
		limit = 1000
	}
	return &History{limit: limit}
}

// file resolves the backing path on first use so that a History that is
// never persisted never touches the state dir.
func (h *History) file() string {
	if h.path == "" {
		dir, err := xdg.StateDir()
		if err != nil {
			return ""
		}
		h.path = filepath.Join(dir, "history")
	}
	return h.path
}

// Add appends a command, skipping consecutive duplicates and enforcing
// the entry cap.
func (h *History) Add(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Recent returns up to n of the newest entries, oldest first.
func (h *History) Recent(n int) []string {
	start := 0
	if len(h.entries) > n {
		start = len(h.entries) - n
	}
	return h.entries[start:]
}

// Len returns the number of held entries.
func (h *History) Len() int { return len(h.entries) }

// Load reads persisted history. A missing or unreadable file is ignored.
func (h *History) Load() {
	path := h.file()
	if path == "" {
		return
	}
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.Add(scanner.Text())
	}
}

// Save writes the held entries back to the state file.
func (h *History) Save() {
	path := h.file()
	if path == "" {
		return
	}
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()

	for _, entry := range h.entries {
		_, _ = file.WriteString(entry + "\n")
	}
}
