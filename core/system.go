package core

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/jartos/commands"
	"github.com/josephlewis42/jartos/core/config"
	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/proctable"
	"github.com/josephlewis42/jartos/core/ttylog"
	"github.com/josephlewis42/jartos/core/vos"
	"github.com/josephlewis42/jartos/core/vpath"
)

// System holds the collaborators shared by shell sessions, built from a
// configuration.
type System struct {
	configuration *config.Configuration
	volumes       *vos.Volumes
	memory        vos.Memory
	auth          vos.Authenticator
	logger        *logger.Logger

	tokenizer  commands.Tokenizer
	rootPolicy vpath.RootPolicy

	shutdownOnce sync.Once
	shutdown     chan struct{}
}

// NewSystem creates the volumes and services described by configuration.
// Session events are written to eventLog as JSON lines.
func NewSystem(configuration *config.Configuration, eventLog io.Writer) (*System, error) {
	volumes, err := vos.NewVolumesFromConfig(configuration)
	if err != nil {
		return nil, err
	}

	tokenizer, err := commands.TokenizerByName(configuration.Tokenizer)
	if err != nil {
		return nil, err
	}

	rootPolicy, err := vpath.ParseRootPolicy(configuration.RootParent)
	if err != nil {
		return nil, err
	}

	return &System{
		configuration: configuration,
		volumes:       volumes,
		memory:        vos.NewRuntimeMemory(),
		auth:          vos.NewStaticAuthenticator(configuration),
		logger:        logger.NewJsonLinesLogRecorder(eventLog),
		tokenizer:     tokenizer,
		rootPolicy:    rootPolicy,
		shutdown:      make(chan struct{}),
	}, nil
}

// Volumes returns the system's filesystem.
func (sys *System) Volumes() *vos.Volumes {
	return sys.volumes
}

// Shutdown powers the system off, it's safe to call more than once.
func (sys *System) Shutdown() {
	sys.shutdownOnce.Do(func() {
		close(sys.shutdown)
	})
}

// Done is closed once a session runs exit.
func (sys *System) Done() <-chan struct{} {
	return sys.shutdown
}

// NewShell creates a shell with fresh session state: a current directory at
// the default volume's root and an empty process table.
func (sys *System) NewShell(reader LineReader, stdout io.Writer, events commands.EventRecorder, isTerminal bool) *Shell {
	session := commands.NewSession(sys.volumes, sys.memory, vos.PowerFunc(sys.Shutdown), stdout)
	session.Cwd = vpath.Root(sys.configuration.DefaultVolume)
	session.Procs = proctable.New(sys.volumes, sys.configuration.ExecutableSuffixes...)
	session.Events = events
	session.Tokenizer = sys.tokenizer
	session.RootPolicy = sys.rootPolicy
	session.Color = commands.NewColorPrinter(sys.configuration.Color, isTerminal)

	shell := NewShell(session, reader, sys.auth)
	shell.Motd = sys.configuration.Motd
	return shell
}

// ReaderFactory creates the line reader for a session's streams.
type ReaderFactory func(vio vos.VIO, isTerminal bool) (LineReader, io.Writer, io.Closer, error)

// NewReadlineReader creates a readline editor over the session's streams.
func NewReadlineReader(vio vos.VIO, isTerminal bool) (LineReader, io.Writer, io.Closer, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(vio.Stdin()),
		Stdout: vio.Stdout(),
		Stderr: vio.Stderr(),
		FuncIsTerminal: func() bool {
			return isTerminal
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, nil, nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return rl, rl, rl, nil
}

// HandleSession runs one interactive session on the given streams.
func (sys *System) HandleSession(vio vos.VIO, isTerminal bool) error {
	return sys.runSession(vio, isTerminal, NewReadlineReader)
}

func (sys *System) runSession(vio vos.VIO, isTerminal bool, newReader ReaderFactory) error {
	sessionLogger := sys.logger.NewSession()

	if sys.configuration.RecordSessions {
		logFileName := fmt.Sprintf("%s-%s.%s",
			time.Now().UTC().Format("20060102T150405Z"),
			sessionLogger.SessionID(),
			ttylog.AsciicastFileExt)

		logFd, err := sys.configuration.CreateSessionLog(logFileName)
		if err != nil {
			return err
		}
		defer logFd.Close()

		sessionLogger.Record(&logger.OpenTTYLog{Name: logFileName})

		// Start logging the terminal interactions
		recorder := ttylog.NewRecorder(vio, ttylog.NewAsciicastLogSink(logFd))
		defer recorder.Close()
		vio = recorder
	}

	reader, stdout, closer, err := newReader(vio, isTerminal)
	if err != nil {
		return err
	}
	defer closer.Close()

	shell := sys.NewShell(reader, stdout, sessionLogger, isTerminal)
	if err := shell.Run(); err != nil {
		log.Printf("session %s: %v", sessionLogger.SessionID(), err)
		return err
	}
	return nil
}
