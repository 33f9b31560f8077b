// Package meta carries program identity used by the prompt and banner.
// The values are resolved once at startup and injected into the shell
// instead of being looked up through process-wide state.
package meta

import "time"

// Info identifies the running program.
type Info struct {
	// Name is the program name shown in the prompt and banner.
	Name string
	// Version is the build version, typically set via -ldflags.
	Version string
}

// Clock supplies the current time for the startup banner.
// Tests substitute a fixed clock.
type Clock func() time.Time
