// Copyright (c) 2026 sqlshell
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"sqlshell/cli/internal/command"
	"sqlshell/cli/internal/meta"
	"sqlshell/cli/internal/shell"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// execCmd runs commands from a file through the same classify/dispatch
// pipeline as the interactive shell, one line per command. Blank lines
// and "--" comments are skipped. An .exit directive in the file stops
// processing early.
var execCmd = &cobra.Command{
	Use:   "exec <file>",
	Short: "Execute shell commands from a file, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			pterm.DisableColor()
		}
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		// The shell's own buffer goes unused here; lines come from the
		// file scanner below and feed RunLine directly.
		sh := shell.New(shell.Options{
			Info:   meta.Info{Name: programName, Version: Version},
			In:     strings.NewReader(""),
			Out:    os.Stdout,
			ErrOut: os.Stderr,
		})

		ran, failed := 0, 0
		var slot command.Command
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "--") {
				continue
			}
			outcome, err := sh.RunLine(line, &slot)
			ran++
			if err != nil {
				failed++
			}
			if outcome == shell.Terminate {
				break
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		pterm.Println()
		pterm.Printfln("Done: %d commands, %d failed", ran, failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
