package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

func NewBugReport() *BugReport {
	return &BugReport{
		InvalidInvocations: NewPathCounter("command", "error"),
		UnknownCommands:    NewPathCounter("command"),
		Faults:             NewPathCounter("command", "context", "error"),
	}
}

// BugReport pulls events that are likely bugs in the shell or its
// collaborators.
type BugReport struct {
	LogEntries int `json:"log_entries"`

	InvalidInvocations *PathCounter `json:"invalid_invocations"`
	UnknownCommands    *PathCounter `json:"unknown_commands"`
	Faults             *PathCounter `json:"faults"`
	Panics             []string     `json:"panics"`
}

func (r *BugReport) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *CommandFault:
		r.Faults.Increment(firstOrEmpty(event.Command), event.Context, event.Error)
		if event.Panic {
			r.Panics = append(r.Panics, fmt.Sprintf("%s: %s", event.Context, event.Error))
		}
	case *UnknownCommand:
		r.UnknownCommands.Increment(firstOrEmpty(event.Command))
	case *InvalidInvocation:
		r.InvalidInvocations.Increment(firstOrEmpty(event.Command), event.Error)
	}
}

type InteractionReport struct {
	// Map of sessionID -> interactions
	interactions map[string]*InteractiveSession
}

type InteractiveSession struct {
	Login struct {
		Username string `json:"username"`
		Attempts int    `json:"attempts"`
		Success  bool   `json:"success"`
	} `json:"login"`
	TTYLog     string `json:"tty_log"`
	LogEntries int    `json:"log_entries"`

	Commands  []string `json:"commands"`
	Processes []string `json:"processes"`
	Shutdown  bool     `json:"shutdown"`
}

func (i *InteractiveSession) Update(le *LogEntry) {
	i.LogEntries++

	switch event := le.GetLogType().(type) {
	case *LoginAttempt:
		i.Login.Attempts++
		i.Login.Username = event.Username
		i.Login.Success = event.Result == OperationResultSuccess
	case *RunCommand:
		i.Commands = append(i.Commands, strings.Join(event.Command, " "))
	case *UnknownCommand:
		i.Commands = append(i.Commands, strings.Join(event.Command, " "))
	case *ProcessLaunch:
		if event.Result == OperationResultSuccess {
			i.Processes = append(i.Processes, event.Path)
		}
	case *OpenTTYLog:
		i.TTYLog = event.Name
	case *Shutdown:
		i.Shutdown = true
	}
}

func (i *InteractionReport) init() {
	if i.interactions == nil {
		i.interactions = make(map[string]*InteractiveSession)
	}
}

// Session returns the interactions of one session, or nil if it wasn't seen.
func (i *InteractionReport) Session(sessionID string) *InteractiveSession {
	i.init()
	return i.interactions[sessionID]
}

// MarshalJSON implemnts custom JSON marshaler.
func (i *InteractionReport) MarshalJSON() ([]byte, error) {
	i.init()

	return json.Marshal(i.interactions)
}

func (i *InteractionReport) Update(le *LogEntry) {
	i.init()

	sessionID := le.SessionID
	if sessionID == "" {
		return
	}
	report, ok := i.interactions[sessionID]
	if !ok {
		report = &InteractiveSession{}
		i.interactions[sessionID] = report
	}

	report.Update(le)
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	LoginAttempt      LoginAttemptReport      `json:"login_attempt_report"`
	RunCommand        RunCommandReport        `json:"run_command_report"`
	UnknownCommand    UnknownCommandReport    `json:"unknown_command_report"`
	InvalidInvocation InvalidInvocationReport `json:"invalid_invocation_report"`
	Process           ProcessReport           `json:"process_report"`
	Fault             FaultReport             `json:"fault_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *LoginAttempt:
		r.LoginAttempt.update(event)
	case *RunCommand:
		r.RunCommand.update(event)
	case *CommandFault:
		r.Fault.update(event)
	case *UnknownCommand:
		r.UnknownCommand.update(event)
	case *InvalidInvocation:
		r.InvalidInvocation.update(event)
	case *ProcessLaunch:
		r.Process.updateLaunch(event)
	case *ProcessTerminate:
		r.Process.updateTerminate(event)
	case *OpenTTYLog, *Shutdown:
		// Ignore
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type LoginAttemptReport struct {
	// List of usernames and their counts.
	Usernames StrCounter `json:"usernames"`
	// List of login attempt results and their counts.
	Results StrCounter `json:"results"`
}

func (r *LoginAttemptReport) update(la *LoginAttempt) {
	r.Usernames.Increment(la.Username)
	r.Results.Increment(string(la.Result))
}

type RunCommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Directories commands were run from.
	Directories StrCounter `json:"directories"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	if len(rc.Command) > 0 {
		r.CommandNames.Increment(rc.Command[0])
	}
	r.Directories.Increment(rc.Cwd)
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(logEntry *UnknownCommand) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type InvalidInvocationReport struct {
	CommandNames StrCounter `json:"command_counts"`
}

func (r *InvalidInvocationReport) update(logEntry *InvalidInvocation) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type ProcessReport struct {
	Launched     int        `json:"launched"`
	Terminated   int        `json:"terminated"`
	Paths        StrCounter `json:"paths"`
	LaunchErrors StrCounter `json:"launch_errors"`
}

func (r *ProcessReport) updateLaunch(p *ProcessLaunch) {
	if p.Result != OperationResultSuccess {
		r.LaunchErrors.Increment(p.Path)
		return
	}
	r.Launched++
	r.Paths.Increment(p.Path)
}

func (r *ProcessReport) updateTerminate(p *ProcessTerminate) {
	if p.Result == OperationResultSuccess {
		r.Terminated++
	}
}

type FaultReport struct {
	Contexts []string `json:"contexts"`
	Panics   int      `json:"panics"`
}

func (r *FaultReport) update(f *CommandFault) {
	r.Contexts = append(r.Contexts, f.Context)
	if f.Panic {
		r.Panics++
	}
}

func firstOrEmpty(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
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

// Count returns how many times key was seen.
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

// PathCounter counts the number of strings seen.
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

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	var out []Count
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
