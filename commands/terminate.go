package commands

import (
	"errors"
	"strconv"

	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/proctable"
)

func init() {
	register(&Spec{
		Kind:    KindTerminate,
		Name:    "terminate",
		MinArgs: 1,
		Usage:   "Usage: terminate [processId]",
		Short:   "Terminate a running process",
		Doing:   "terminating process",
		Run:     Terminate,
	})
}

// Terminate removes the launch record at a positional id. Records after it
// move down by one.
func Terminate(s *Session, args []string) error {
	token := args[0]

	path, err := s.Procs.Terminate(token)
	var badID *proctable.InvalidIDError
	switch {
	case errors.As(err, &badID):
		s.record(&logger.ProcessTerminate{Token: token, Result: logger.OperationResultFailure})
		return &InvalidProcessIDError{Token: token}
	case err != nil:
		return err
	}

	// Already validated by the table.
	id, _ := strconv.Atoi(token)
	s.record(&logger.ProcessTerminate{Token: token, Path: path, Result: logger.OperationResultSuccess})
	s.printf("Process '%s' with Process ID %d terminated.\n", path, id)
	return nil
}
