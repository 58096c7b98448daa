package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/jartos/commands"
	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/vos"
)

const (
	usernamePrompt = "Enter your username: "
	passwordPrompt = "Enter your password: "
)

// LineReader reads input lines from a terminal, *readline.Instance
// implements it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
}

var _ LineReader = (*readline.Instance)(nil)

// Shell logs a user in then runs their commands until they exit or input
// ends.
type Shell struct {
	Session *commands.Session
	Reader  LineReader
	Auth    vos.Authenticator
	// Motd is shown before the login prompt.
	Motd string

	username string
}

// NewShell creates a shell over an existing session. Output goes to the
// session's Stdout.
func NewShell(session *commands.Session, reader LineReader, auth vos.Authenticator) *Shell {
	return &Shell{
		Session: session,
		Reader:  reader,
		Auth:    auth,
	}
}

// Username returns the logged in user, empty before login.
func (s *Shell) Username() string {
	return s.username
}

func (s *Shell) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.Session.Stdout, format, a...)
}

func (s *Shell) record(event logger.LogType) {
	if s.Session.Events != nil {
		_ = s.Session.Events.Record(event)
	}
}

// Login prompts until a valid username and password are given. It returns
// io.EOF if input ends first.
func (s *Shell) Login() (string, error) {
	for {
		s.Reader.SetPrompt(usernamePrompt)
		username, err := s.Reader.Readline()
		if err != nil {
			return "", err
		}

		password, err := s.Reader.ReadPassword(passwordPrompt)
		if err != nil {
			return "", err
		}

		ok := s.Auth.CheckCredentials(username, string(password))
		s.record(&logger.LoginAttempt{Username: username, Result: logger.ResultOf(ok)})
		if ok {
			s.printf("Login successful. Welcome, %s!\n", username)
			return username, nil
		}

		s.printf("Login failed. Invalid username or password. Try again.\n")
	}
}

// Run shows the banner, logs the user in and runs the read-dispatch loop.
// It returns nil when input ends or the user exits.
func (s *Shell) Run() error {
	if s.Motd != "" {
		s.printf("%s\n", strings.TrimRight(s.Motd, "\n"))
	}
	s.printf("LOGIN TO PROCEED : \n")

	username, err := s.Login()
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
		return nil
	case err != nil:
		return err
	}
	s.username = username

	s.printf("Welcome to the terminal! Type 'help' for a list of commands.\n")
	for !s.Session.Exited() {
		s.Reader.SetPrompt(s.Session.Prompt())
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// The typed line is abandoned.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			return err

		default:
			commands.Dispatch(s.Session, line)
		}
	}

	return nil
}
