package commands

import (
	"errors"

	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/proctable"
)

func init() {
	register(&Spec{
		Kind:    KindRun,
		Name:    "run",
		MinArgs: 1,
		Usage:   "Usage: run [executable]",
		Short:   "Run an executable",
		Doing:   "running executable",
		Run:     Run,
	})
}

// Run adds a launch record for an executable under the current directory.
// Nothing is actually executed.
func Run(s *Session, args []string) error {
	path := args[0]

	id, err := s.Procs.Launch(s.Cwd, path)
	switch {
	case errors.Is(err, proctable.ErrNotLaunchable):
		s.record(&logger.ProcessLaunch{Path: s.resolve(path), Result: logger.OperationResultFailure})
		return &NotFoundError{Noun: "Executable", Name: path, Reason: "not found or not supported"}
	case err != nil:
		return err
	}

	s.record(&logger.ProcessLaunch{Path: s.resolve(path), ID: id, Result: logger.OperationResultSuccess})
	s.printf("Process '%s' started with Process ID: %d\n", path, id)
	return nil
}
