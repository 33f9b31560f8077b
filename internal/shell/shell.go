// Package shell implements the read-classify-dispatch loop of the
// database client front end. The loop is single-threaded: the line
// buffer's blocking read is the only suspension point.
package shell

import (
	"fmt"
	"io"

	"sqlshell/cli/internal/command"
	"sqlshell/cli/internal/errors"
	"sqlshell/cli/internal/history"
	"sqlshell/cli/internal/input"
	"sqlshell/cli/internal/logging"
	"sqlshell/cli/internal/meta"
)

// Outcome is the dispatcher's verdict on how the loop should proceed.
// Process exit stays with the driver; the dispatcher only reports it.
type Outcome int

const (
	// Continue keeps the loop running.
	Continue Outcome = iota
	// Terminate stops the loop with success, the .exit path.
	Terminate
)

// Shell wires the input buffer, classifier and dispatcher together.
type Shell struct {
	info        meta.Info
	buf         *input.Buffer
	out         io.Writer
	errOut      io.Writer
	hist        *history.History
	persistHist bool
	prompt      string
	interactive bool
	clearScreen func()
}

// Options configures a Shell.
type Options struct {
	// Info identifies the program in the prompt and .version output.
	Info meta.Info
	// In is the input stream, normally os.Stdin.
	In io.Reader
	// Out receives command output, normally os.Stdout.
	Out io.Writer
	// ErrOut receives diagnostics, normally os.Stderr.
	ErrOut io.Writer
	// History receives every successfully classified line. Optional.
	History *history.History
	// Prompt overrides the default "<name> > " prompt when non-empty.
	Prompt string
	// Interactive enables prompt printing. Piped input runs silent.
	Interactive bool
	// ClearScreen performs the .clear redraw. Optional; defaults to a
	// no-op so tests never touch the real terminal.
	ClearScreen func()
}

// New returns a ready Shell.
func New(opts Options) *Shell {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("%s > ", opts.Info.Name)
	}
	clear := opts.ClearScreen
	if clear == nil {
		clear = func() {}
	}
	hist := opts.History
	persist := hist != nil
	if hist == nil {
		hist = history.New(0)
	}
	return &Shell{
		info:        opts.Info,
		buf:         input.New(opts.In),
		out:         opts.Out,
		errOut:      opts.ErrOut,
		hist:        hist,
		persistHist: persist,
		prompt:      prompt,
		interactive: opts.Interactive,
		clearScreen: clear,
	}
}

// Run drives the loop until an exit directive or a transport failure.
//
// A Terminate outcome returns nil; the driver maps it to exit status 0.
// A closed or failing input stream returns the transport error untouched
// so the driver can exit non-zero with a diagnostic. Classification and
// execution errors never escape the loop.
func (s *Shell) Run() error {
	var slot command.Command
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if err := s.buf.Read(); err != nil {
			return err
		}
		if s.Step(&slot) == Terminate {
			if s.persistHist {
				s.hist.Save()
			}
			return nil
		}
	}
}

// Step runs one iteration against the buffered line: classify, fill the
// slot, dispatch. Every failure becomes a stderr diagnostic and a
// Continue outcome.
func (s *Shell) Step(slot *command.Command) Outcome {
	text, err := s.buf.Text()
	if err != nil {
		fmt.Fprintln(s.errOut, logging.Diagnostic(err))
		return Continue
	}
	outcome, _ := s.RunLine(text, slot)
	return outcome
}

// RunLine classifies text into the slot and dispatches it. On a failed
// classification the slot is reset and nothing executes. The failure is
// already reported on stderr when returned; callers use it only to count.
func (s *Shell) RunLine(text string, slot *command.Command) (Outcome, error) {
	typ, err := command.Classify(text)
	if err != nil {
		slot.Reset()
		fmt.Fprintln(s.errOut, logging.Diagnostic(err))
		return Continue, err
	}
	slot.Set(typ)
	s.hist.Add(text)

	outcome, err := s.Execute(slot)
	if err != nil {
		fmt.Fprintln(s.errOut, logging.Diagnostic(err))
		return Continue, err
	}
	return outcome, nil
}

// Execute dispatches an already classified command.
//
// The empty-slot branch is defensive: the runner never dispatches after a
// failed classification, but dispatch on an empty slot must still fail
// cleanly rather than assume composition is correct.
func (s *Shell) Execute(slot *command.Command) (Outcome, error) {
	typ, ok := slot.Get()
	if !ok {
		return Continue, errors.New(errors.NoCommand, "unrecognized command")
	}
	switch typ {
	case command.MetaExit:
		return Terminate, nil
	case command.MetaHelp:
		s.printHelp()
	case command.MetaVersion:
		fmt.Fprintf(s.out, "%s version %s\n", s.info.Name, s.info.Version)
	case command.MetaHistory:
		s.printHistory()
	case command.MetaClear:
		s.clearScreen()
	case command.QueryInsert:
		fmt.Fprintln(s.out, "This is where we would do an insert.")
	case command.QuerySelect:
		fmt.Fprintln(s.out, "This is where we would do a select.")
	default:
		return Continue, errors.New(errors.NoCommand, "unrecognized command")
	}
	return Continue, nil
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Special commands:")
	for _, typ := range command.Order {
		if !typ.IsMeta() {
			continue
		}
		info := command.Registry[typ]
		fmt.Fprintf(s.out, "  %-12s %s\n", info.Usage, info.Description)
	}
	fmt.Fprintln(s.out, "Queries:")
	for _, typ := range command.Order {
		if typ.IsMeta() {
			continue
		}
		info := command.Registry[typ]
		fmt.Fprintf(s.out, "  %-12s %s\n", info.Usage, info.Description)
	}
}

func (s *Shell) printHistory() {
	recent := s.hist.Recent(20)
	if len(recent) == 0 {
		fmt.Fprintln(s.out, "No command history")
		return
	}
	offset := s.hist.Len() - len(recent)
	for i, entry := range recent {
		fmt.Fprintf(s.out, "  %3d  %s\n", offset+i+1, entry)
	}
}
