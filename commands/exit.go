package commands

import "github.com/josephlewis42/jartos/core/logger"

func init() {
	register(&Spec{
		Kind:  KindExit,
		Name:  "exit",
		Short: "Shutdown the system",
		Doing: "shutting down",
		Run:   Exit,
	})
}

// Exit asks the power service to shut down and marks the session finished.
func Exit(s *Session, args []string) error {
	s.record(&logger.Shutdown{Cwd: s.Cwd, LiveProcesses: s.Procs.Len()})
	s.exited = true
	s.Power.Shutdown()
	return nil
}
