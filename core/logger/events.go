package logger

import "fmt"

// LogType is implemented by every event that can be recorded in a LogEntry.
type LogType interface {
	isLogType()
}

// LogEntry is a single line of the event log. Exactly one of the event fields
// is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	CommandExit       *CommandExit       `json:"command_exit,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	LaunchError       *LaunchError       `json:"launch_error,omitempty"`
	InputError        *InputError        `json:"input_error,omitempty"`
}

// GetSessionId returns the ID of the session that produced the entry.
func (le *LogEntry) GetSessionId() string {
	if le == nil {
		return ""
	}
	return le.SessionID
}

// GetLogType returns the event held by the entry, or nil if it has none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le == nil:
		return nil
	case le.RunCommand != nil:
		return le.RunCommand
	case le.CommandExit != nil:
		return le.CommandExit
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	case le.LaunchError != nil:
		return le.LaunchError
	case le.InputError != nil:
		return le.InputError
	default:
		return nil
	}
}

func (le *LogEntry) setLogType(event LogType) error {
	switch event := event.(type) {
	case *RunCommand:
		le.RunCommand = event
	case *CommandExit:
		le.CommandExit = event
	case *InvalidInvocation:
		le.InvalidInvocation = event
	case *LaunchError:
		le.LaunchError = event
	case *InputError:
		le.InputError = event
	default:
		return fmt.Errorf("unknown event: %T", event)
	}
	return nil
}

// RunCommand is logged when a line is dispatched.
type RunCommand struct {
	// Command holds the program name followed by its arguments.
	Command []string `json:"command"`
	// Builtin is set if the command was handled inside the shell.
	Builtin bool `json:"builtin,omitempty"`
}

// CommandExit is logged when a launched program terminates.
type CommandExit struct {
	Command    []string `json:"command"`
	ExitStatus int      `json:"exit_status"`
}

// InvalidInvocation is logged when a builtin rejects its arguments or fails.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

// LaunchStage names the step of launching a program that failed.
type LaunchStage string

const (
	LaunchStageSpawn LaunchStage = "spawn"
	LaunchStageWait  LaunchStage = "wait"
)

// LaunchError is logged when a program can't be started or waited on.
type LaunchError struct {
	Command []string    `json:"command"`
	Stage   LaunchStage `json:"stage"`
	Error   string      `json:"error"`
}

// InputError is logged when the shell can no longer read input.
type InputError struct {
	Error string `json:"error"`
}

func (*RunCommand) isLogType()        {}
func (*CommandExit) isLogType()       {}
func (*InvalidInvocation) isLogType() {}
func (*LaunchError) isLogType()       {}
func (*InputError) isLogType()        {}
