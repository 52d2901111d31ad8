package shell

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/lsh/core/logger"
)

// DefaultPrompt is shown before each line is read.
const DefaultPrompt = "> "

// Signal tells the interpreter loop whether to read another line.
type Signal int

const (
	// Continue reads the next line.
	Continue Signal = iota
	// Stop ends the interpreter loop.
	Stop
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// EventRecorder stores session events.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopEventRecorder struct{}

func (nopEventRecorder) Record(logger.LogType) error {
	return nil
}

// Shell reads commands one line at a time and runs them until told to stop.
type Shell struct {
	IO       IO
	Lines    LineSource
	Builtins Builtins
	Spawner  Spawner
	Prompt   string

	// Home is the directory cd changes to when given no arguments. If empty,
	// the user's home directory is used.
	Home string

	// ErrorColor, if set, colors the prefix of builtin diagnostics.
	ErrorColor *color.Color

	// Events receives a record of everything the shell does.
	Events EventRecorder
	// Log receives operational messages, like failures to record events.
	Log *log.Logger

	eventsFailed bool
}

// New creates a shell that reads commands from lines and uses stdio for
// builtin output and launched programs.
func New(stdio IO, lines LineSource) *Shell {
	return &Shell{
		IO:       stdio,
		Lines:    lines,
		Builtins: DefaultBuiltins(),
		Spawner:  &ExecSpawner{},
		Prompt:   DefaultPrompt,
		Events:   nopEventRecorder{},
		Log:      log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Run reads and dispatches lines until a command returns Stop or input can
// no longer be read. Read errors, including ErrInputClosed, are returned.
func (s *Shell) Run() error {
	for {
		line, err := s.Lines.ReadLine(s.Prompt)
		if err != nil {
			// Running out of input is how sessions normally end.
			if !errors.Is(err, ErrInputClosed) {
				s.record(&logger.InputError{Error: err.Error()})
			}
			return err
		}

		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue // empty line
		}

		if s.Dispatch(tokens) == Stop {
			return nil
		}
	}
}

// Dispatch runs a single command. The first token names a builtin or a
// program to launch, the rest are its arguments.
func (s *Shell) Dispatch(tokens []string) Signal {
	name, args := tokens[0], tokens[1:]

	if builtin, ok := s.Builtins[name]; ok {
		s.record(&logger.RunCommand{Command: tokens, Builtin: true})
		return builtin.Main(s, args)
	}

	s.record(&logger.RunCommand{Command: tokens})
	return s.Launch(name, args)
}

// builtinError reports a failed builtin to the user.
func (s *Shell) builtinError(command []string, msg string) {
	prefix := "lsh:"
	if s.ErrorColor != nil {
		prefix = s.ErrorColor.Sprint(prefix)
	}
	fmt.Fprintf(s.IO.Stderr(), "%s %s\n", prefix, msg)

	s.record(&logger.InvalidInvocation{Command: command, Error: msg})
}

func (s *Shell) record(event logger.LogType) {
	if s.Events == nil || s.eventsFailed {
		return
	}

	if err := s.Events.Record(event); err != nil {
		// Only report the first failure, the rest are likely the same.
		s.eventsFailed = true
		if s.Log != nil {
			s.Log.Printf("Couldn't record event, event logging disabled: %v", err)
		}
	}
}
