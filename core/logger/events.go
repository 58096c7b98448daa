package logger

// OperationResult is the outcome of an operation.
type OperationResult string

const (
	OperationResultUnknown OperationResult = ""
	OperationResultSuccess OperationResult = "SUCCESS"
	OperationResultFailure OperationResult = "FAILURE"
)

// ResultOf converts a boolean outcome to an OperationResult.
func ResultOf(ok bool) OperationResult {
	if ok {
		return OperationResultSuccess
	}
	return OperationResultFailure
}

// LogEntry is a single event. Exactly one of the event fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	LoginAttempt      *LoginAttempt      `json:"login_attempt,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	CommandFault      *CommandFault      `json:"command_fault,omitempty"`
	ProcessLaunch     *ProcessLaunch     `json:"process_launch,omitempty"`
	ProcessTerminate  *ProcessTerminate  `json:"process_terminate,omitempty"`
	OpenTTYLog        *OpenTTYLog        `json:"open_tty_log,omitempty"`
	Shutdown          *Shutdown          `json:"shutdown,omitempty"`
}

// GetLogType returns the event held by the entry, or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.LoginAttempt != nil:
		return le.LoginAttempt
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	case le.CommandFault != nil:
		return le.CommandFault
	case le.ProcessLaunch != nil:
		return le.ProcessLaunch
	case le.ProcessTerminate != nil:
		return le.ProcessTerminate
	case le.OpenTTYLog != nil:
		return le.OpenTTYLog
	case le.Shutdown != nil:
		return le.Shutdown
	default:
		return nil
	}
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// LoginAttempt is a try at logging in. Passwords are never recorded.
type LoginAttempt struct {
	Username string          `json:"username"`
	Result   OperationResult `json:"result"`
}

func (e *LoginAttempt) setOn(le *LogEntry) { le.LoginAttempt = e }

// RunCommand is a command that was dispatched to a handler.
type RunCommand struct {
	Command []string `json:"command"`
	Cwd     string   `json:"cwd"`
}

func (e *RunCommand) setOn(le *LogEntry) { le.RunCommand = e }

type UnknownCommand struct {
	Command []string `json:"command"`
}

func (e *UnknownCommand) setOn(le *LogEntry) { le.UnknownCommand = e }

// InvalidInvocation is a known command called with the wrong arguments.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

func (e *InvalidInvocation) setOn(le *LogEntry) { le.InvalidInvocation = e }

// CommandFault is a command that failed because a collaborator failed.
type CommandFault struct {
	Command []string `json:"command"`
	Context string   `json:"context"`
	Error   string   `json:"error"`
	Panic   bool     `json:"panic,omitempty"`
}

func (e *CommandFault) setOn(le *LogEntry) { le.CommandFault = e }

type ProcessLaunch struct {
	Path   string          `json:"path"`
	ID     int             `json:"id,omitempty"`
	Result OperationResult `json:"result"`
}

func (e *ProcessLaunch) setOn(le *LogEntry) { le.ProcessLaunch = e }

type ProcessTerminate struct {
	Token  string          `json:"token"`
	Path   string          `json:"path,omitempty"`
	Result OperationResult `json:"result"`
}

func (e *ProcessTerminate) setOn(le *LogEntry) { le.ProcessTerminate = e }

// OpenTTYLog records the name of the session's terminal recording.
type OpenTTYLog struct {
	Name string `json:"name"`
}

func (e *OpenTTYLog) setOn(le *LogEntry) { le.OpenTTYLog = e }

type Shutdown struct {
	Cwd           string `json:"cwd"`
	LiveProcesses int    `json:"live_processes"`
}

func (e *Shutdown) setOn(le *LogEntry) { le.Shutdown = e }
