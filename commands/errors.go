package commands

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned by Parse for lines with nothing but whitespace.
var ErrEmptyLine = errors.New("empty line")

// UsageError is a known command called with too few arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// NotFoundError is an operation whose target doesn't exist.
type NotFoundError struct {
	// Noun is the kind of thing that was missing, e.g. "File".
	Noun   string
	Name   string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' %s.", e.Noun, e.Name, e.Reason)
}

// InvalidProcessIDError is a malformed or out of range process id.
type InvalidProcessIDError struct {
	Token string
}

func (e *InvalidProcessIDError) Error() string {
	return fmt.Sprintf("Invalid process ID: %s", e.Token)
}

// FaultError is a failure reported by a collaborator while a command ran.
type FaultError struct {
	// Doing describes what the command was doing, e.g. "creating directory".
	Doing string
	Err   error

	panicked bool
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("Error %s: %v", e.Doing, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// UnknownCommandError is a line whose first token names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Unknown command. Type 'help' for a list of commands."
}

// InvalidPathError is a path that can't be resolved.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Invalid path '%s': %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// SyntaxError is a line the tokenizer couldn't split.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// isReportable reports whether err is already one of the errors a command is
// expected to print, as opposed to a raw collaborator failure.
func isReportable(err error) bool {
	var (
		usage    *UsageError
		notFound *NotFoundError
		badID    *InvalidProcessIDError
		fault    *FaultError
		unknown  *UnknownCommandError
		badPath  *InvalidPathError
		syntax   *SyntaxError
	)

	return errors.As(err, &usage) ||
		errors.As(err, &notFound) ||
		errors.As(err, &badID) ||
		errors.As(err, &fault) ||
		errors.As(err, &unknown) ||
		errors.As(err, &badPath) ||
		errors.As(err, &syntax)
}
