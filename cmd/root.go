// Copyright (c) 2026 sqlshell
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the sqlshell application.
// It implements the interactive shell and its supporting subcommands using the
// Cobra CLI framework. The package handles command parsing, process exit codes,
// and the startup banner.
package cmd

import (
	"fmt"
	"os"
	"time"

	"sqlshell/cli/internal/config"
	"sqlshell/cli/internal/errors"
	"sqlshell/cli/internal/history"
	"sqlshell/cli/internal/logging"
	"sqlshell/cli/internal/meta"
	"sqlshell/cli/internal/shell"
	"sqlshell/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const programName = "sqlshell"

var (
	showVersion bool
	noColor     bool
)

// rootCmd represents the base command when called without any subcommands.
// It starts the interactive shell on the process's standard streams.
var rootCmd = &cobra.Command{
	Use:   programName,
	Short: "Interactive front-end shell for a SQL database",
	Long: `sqlshell reads commands a line at a time and routes them: shell directives
start with a '.' sentinel (.help, .exit, ...), anything else is treated as a
query. Query execution is not implemented yet; query commands print a
placeholder acknowledgment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("%s %s\n", programName, Version)
			return nil
		}
		return runShell()
	},
}

// Execute runs the CLI application. It maps a clean .exit to status 0 and
// any transport failure on the input stream to status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func runShell() error {
	cfg, err := config.Load()
	if err != nil {
		// Unreadable config is not worth refusing to start over.
		cfg = config.Config{HistoryLimit: 1000}
	}
	if noColor || cfg.NoColor {
		pterm.DisableColor()
	}

	info := meta.Info{Name: programName, Version: Version}
	hist := history.New(cfg.HistoryLimit)
	hist.Load()

	interactive := terminal.IsInteractive()
	if interactive {
		printBanner(info, time.Now)
	}

	sh := shell.New(shell.Options{
		Info:        info,
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		History:     hist,
		Prompt:      cfg.Prompt,
		Interactive: interactive,
		ClearScreen: terminal.ClearScreen,
	})
	if err := sh.Run(); err != nil {
		hist.Save()
		// Transport-fatal: closed stream or I/O failure, never a
		// classification result. The caller exits non-zero.
		if errors.IsKind(err, errors.EndOfInput) {
			return fmt.Errorf("Error reading input: end of input stream")
		}
		return fmt.Errorf("%s", logging.PresentError("Error reading input", err))
	}
	return nil
}

// printBanner writes the greeting: program identity, timestamp and the
// static usage hints.
func printBanner(info meta.Info, now meta.Clock) {
	ts := now().Format("2006-01-02 15:04:05")
	title := pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(info.Name)
	pterm.DefaultBox.
		WithTitle(title).
		Println(fmt.Sprintf("%s version %s\n%s", info.Name, info.Version, ts))
	pterm.Println(`Enter ".help" for usage hints.`)
	pterm.Println("Connected to a transient in-memory database.")
	pterm.Println(`Enter ".exit" to exit the shell.`)
	pterm.Println()
}
