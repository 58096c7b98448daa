package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/jartos/core/logger"
)

// Dispatch runs one line of input against the session.
//
// Every failure, including a panicking collaborator, is printed as a single
// line on the session's output; Dispatch itself always returns normally.
func Dispatch(s *Session, line string) {
	inv, err := Parse(line, s.Tokenizer)
	switch {
	case errors.Is(err, ErrEmptyLine):
		return
	case err != nil:
		s.report(inv, err)
		return
	}

	s.record(&logger.RunCommand{Command: inv.Tokens, Cwd: s.Cwd})
	if err := inv.run(s); err != nil {
		s.report(inv, err)
	}
}

// run calls the handler, converting panics and unexpected errors into faults.
func (inv Invocation) run(s *Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FaultError{Doing: inv.Spec.Doing, Err: fmt.Errorf("%v", r), panicked: true}
		}
	}()

	err = inv.Spec.Run(s, inv.Args)
	if err != nil && !isReportable(err) {
		err = &FaultError{Doing: inv.Spec.Doing, Err: err}
	}
	return err
}

// report prints err and logs it.
func (s *Session) report(inv Invocation, err error) {
	var (
		unknown *UnknownCommandError
		fault   *FaultError
	)
	switch {
	case errors.As(err, &unknown):
		s.record(&logger.UnknownCommand{Command: inv.Tokens})
	case errors.As(err, &fault):
		s.record(&logger.CommandFault{
			Command: inv.Tokens,
			Context: fault.Doing,
			Error:   fmt.Sprint(fault.Err),
			Panic:   fault.panicked,
		})
	default:
		s.record(&logger.InvalidInvocation{Command: inv.Tokens, Error: err.Error()})
	}

	s.println(s.Color.Sprintf(ColorBoldRed, "%s", err.Error()))
}
