// Package command defines the shell's command taxonomy and the classifier
// that maps raw input lines onto it.
//
// Commands come in two disjoint families: meta-commands (shell directives
// identified by a leading '.' and matched against the full line) and query
// commands (data directives identified by a keyword prefix). Classification
// is a flat two-level decision; extending either family means adding one
// Type constant and one table entry.
package command

import (
	"strings"

	"sqlshell/cli/internal/errors"
)

// Sentinel is the leading character that marks a meta-command.
const Sentinel = '.'

// Type identifies a classified command.
type Type uint8

const (
	// MetaExit terminates the shell.
	MetaExit Type = iota
	// MetaHelp prints usage hints.
	MetaHelp
	// MetaVersion prints program name and version.
	MetaVersion
	// MetaHistory prints recent command history.
	MetaHistory
	// MetaClear clears the screen.
	MetaClear
	// QueryInsert is an insert statement.
	QueryInsert
	// QuerySelect is a select statement.
	QuerySelect
)

// IsMeta reports whether t belongs to the meta-command family.
func (t Type) IsMeta() bool { return t <= MetaClear }

// Info describes a command for help output.
type Info struct {
	Usage       string
	Description string
}

// Registry maps every command type to its usage text, in Order.
var Registry = map[Type]Info{
	MetaHelp:    {Usage: ".help", Description: "Show this help message"},
	MetaExit:    {Usage: ".exit", Description: "Exit the shell"},
	MetaVersion: {Usage: ".version", Description: "Show version info"},
	MetaHistory: {Usage: ".history", Description: "Show command history"},
	MetaClear:   {Usage: ".clear", Description: "Clear the screen"},
	QueryInsert: {Usage: "insert ...", Description: "Insert a row (not yet implemented)"},
	QuerySelect: {Usage: "select ...", Description: "Select rows (not yet implemented)"},
}

// Order fixes the display order of Registry entries.
var Order = []Type{
	MetaHelp, MetaExit, MetaVersion, MetaHistory, MetaClear,
	QueryInsert, QuerySelect,
}

func (t Type) String() string {
	if info, ok := Registry[t]; ok {
		return info.Usage
	}
	return "unknown"
}

// metaCommands is the closed set of recognized meta-command literals.
// Lookup is an exact match against the full line.
var metaCommands = map[string]Type{
	".exit":    MetaExit,
	".help":    MetaHelp,
	".version": MetaVersion,
	".history": MetaHistory,
	".clear":   MetaClear,
}

// queryKeywords is the closed set of recognized query keyword prefixes.
// The keywords are mutually prefix-disjoint, so first match wins.
var queryKeywords = []struct {
	prefix string
	typ    Type
}{
	{"select", QuerySelect},
	{"insert", QueryInsert},
}

// Classify maps one buffered line to a command Type.
//
// The decision order is fixed: an empty line is invalid; a line starting
// with the sentinel is matched exactly against the meta-command table; any
// other line is matched by query keyword prefix. Failures carry the
// offending line for diagnostics. Classify has no state and is idempotent.
func Classify(text string) (Type, error) {
	if len(text) == 0 {
		return 0, errors.New(errors.InvalidBuffer, "invalid input buffer")
	}
	if text[0] == Sentinel {
		if typ, ok := metaCommands[text]; ok {
			return typ, nil
		}
		return 0, errors.WithInput(errors.UnrecognizedMetaCommand, "unrecognized meta-command", text)
	}
	for _, kw := range queryKeywords {
		if strings.HasPrefix(text, kw.prefix) {
			return kw.typ, nil
		}
	}
	return 0, errors.WithInput(errors.UnrecognizedQuery, "unrecognized query", text)
}

// Command is the shell's single reusable command slot. Each successful
// classification overwrites the previous value; a failed classification
// resets the slot so a stale command can never be re-executed.
type Command struct {
	typ Type
	set bool
}

// Set stores a classified type in the slot.
func (c *Command) Set(t Type) {
	c.typ = t
	c.set = true
}

// Reset empties the slot.
func (c *Command) Reset() {
	c.set = false
}

// Get returns the held type and whether the slot is filled.
func (c *Command) Get() (Type, bool) {
	return c.typ, c.set
}
