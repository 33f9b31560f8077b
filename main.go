// Package main is the entry point for the sqlshell application.
// It provides an interactive front-end shell for a SQL database.
package main

import (
	"sqlshell/cli/cmd"
)

// main is the entry point for the sqlshell application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
