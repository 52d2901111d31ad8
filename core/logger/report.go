package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		LaunchError: LaunchErrorReport{
			Failures: NewPathCounter("command", "stage", "error"),
		},
		InvalidInvocation: InvalidInvocationReport{
			Errors: NewPathCounter("command", "error"),
		},
	}
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	RunCommand        RunCommandReport        `json:"run_command_report"`
	CommandExit       CommandExitReport       `json:"command_exit_report"`
	InvalidInvocation InvalidInvocationReport `json:"invalid_invocation_report"`
	LaunchError       LaunchErrorReport       `json:"launch_error_report"`
	InputError        InputErrorReport        `json:"input_error_report"`
}

// Update adds the entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if id := le.GetSessionId(); id != "" {
		r.Sessions.Increment(id)
	}

	switch event := le.GetLogType().(type) {
	case *RunCommand:
		r.RunCommand.update(event)
	case *CommandExit:
		r.CommandExit.update(event)
	case *InvalidInvocation:
		r.InvalidInvocation.update(event)
	case *LaunchError:
		r.LaunchError.update(event)
	case *InputError:
		r.InputError.update(event)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type RunCommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Whether the command was a builtin or an external program.
	Kinds StrCounter `json:"kinds"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	if len(rc.Command) > 0 {
		r.CommandNames.Increment(rc.Command[0])
	}
	if rc.Builtin {
		r.Kinds.Increment("builtin")
	} else {
		r.Kinds.Increment("external")
	}
}

type CommandExitReport struct {
	ExitStatuses StrCounter `json:"exit_statuses"`
	// Commands that exited with a non-zero status.
	Failures StrCounter `json:"failures"`
}

func (r *CommandExitReport) update(ce *CommandExit) {
	r.ExitStatuses.Increment(strconv.Itoa(ce.ExitStatus))
	if ce.ExitStatus != 0 && len(ce.Command) > 0 {
		r.Failures.Increment(ce.Command[0])
	}
}

type InvalidInvocationReport struct {
	Errors *PathCounter `json:"errors"`
}

func (r *InvalidInvocationReport) update(ii *InvalidInvocation) {
	if len(ii.Command) > 0 {
		r.Errors.Increment(ii.Command[0], ii.Error)
	}
}

type LaunchErrorReport struct {
	Failures *PathCounter `json:"failures"`
}

func (r *LaunchErrorReport) update(le *LaunchError) {
	if len(le.Command) > 0 {
		r.Failures.Increment(le.Command[0], string(le.Stage), le.Error)
	}
}

type InputErrorReport struct {
	Errors StrCounter `json:"errors"`
}

func (r *InputErrorReport) update(ie *InputError) {
	r.Errors.Increment(ie.Error)
}

// SessionReport collects the history of each session in the log.
type SessionReport struct {
	// Map of sessionID -> session
	sessions map[string]*Session
}

// Session holds the commands run in a single shell session.
type Session struct {
	LogEntries int      `json:"log_entries"`
	Commands   []string `json:"commands"`
	Errors     []string `json:"errors,omitempty"`
}

func (s *Session) update(le *LogEntry) {
	s.LogEntries++

	switch event := le.GetLogType().(type) {
	case *RunCommand:
		s.Commands = append(s.Commands, strings.Join(event.Command, " "))
	case *InvalidInvocation:
		s.Errors = append(s.Errors, fmt.Sprintf("%s: %s", strings.Join(event.Command, " "), event.Error))
	case *LaunchError:
		s.Errors = append(s.Errors, fmt.Sprintf("%s: %s: %s", strings.Join(event.Command, " "), event.Stage, event.Error))
	case *InputError:
		s.Errors = append(s.Errors, fmt.Sprintf("input: %s", event.Error))
	}
}

func (r *SessionReport) init() {
	if r.sessions == nil {
		r.sessions = make(map[string]*Session)
	}
}

// Update adds the entry to the session it belongs to, entries without a
// session are skipped.
func (r *SessionReport) Update(le *LogEntry) {
	r.init()

	sessionID := le.GetSessionId()
	if sessionID == "" {
		return
	}
	session, ok := r.sessions[sessionID]
	if !ok {
		session = &Session{}
		r.sessions[sessionID] = session
	}

	session.update(le)
}

// MarshalJSON implemnts custom JSON marshaler.
func (r *SessionReport) MarshalJSON() ([]byte, error) {
	r.init()

	return json.Marshal(r.sessions)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of times each combination of column values
// is seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns the number of times the combination of values was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
