package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/proctable"
	"github.com/josephlewis42/jartos/core/vos"
	"github.com/josephlewis42/jartos/core/vpath"
)

// DefaultVolume is the volume a new session starts in.
const DefaultVolume = "0"

// EventRecorder receives session events.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopRecorder struct{}

func (nopRecorder) Record(logger.LogType) error { return nil }

// Session is the state a shell carries between commands. It is owned by a
// single read-dispatch loop and isn't safe for concurrent use.
type Session struct {
	// Cwd is the absolute volume path relative arguments resolve against.
	Cwd   string
	Procs *proctable.Table

	FS     vos.FileSystem
	Memory vos.Memory
	Power  vos.Power
	Stdout io.Writer
	Events EventRecorder

	RootPolicy vpath.RootPolicy
	Tokenizer  Tokenizer
	Color      *ColorPrinter

	exited bool
}

// NewSession creates a session rooted at the default volume, accepting
// .exe files as executables and splitting lines on single spaces.
func NewSession(fs vos.FileSystem, memory vos.Memory, power vos.Power, stdout io.Writer) *Session {
	return &Session{
		Cwd:        vpath.Root(DefaultVolume),
		Procs:      proctable.New(fs),
		FS:         fs,
		Memory:     memory,
		Power:      power,
		Stdout:     stdout,
		Events:     nopRecorder{},
		RootPolicy: vpath.StayAtRoot,
		Tokenizer:  SplitSpaces,
	}
}

// Exited reports whether the exit command has run.
func (s *Session) Exited() bool {
	return s.exited
}

// Prompt returns the text shown before each line is read.
func (s *Session) Prompt() string {
	return s.Cwd + "> "
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.Stdout, format, a...)
}

func (s *Session) println(a ...interface{}) {
	fmt.Fprintln(s.Stdout, a...)
}

func (s *Session) record(event logger.LogType) {
	if s.Events == nil {
		return
	}
	// Event logging is best effort, a broken log mustn't break the shell.
	_ = s.Events.Record(event)
}

// resolve joins a command argument onto the current directory.
func (s *Session) resolve(name string) string {
	return vpath.Join(s.Cwd, name)
}
