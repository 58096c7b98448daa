package commands

func init() {
	register(&Spec{
		Kind:  KindList,
		Name:  "list",
		Short: "List running processes",
		Doing: "listing processes",
		Run:   List,
	})
}

func List(s *Session, args []string) error {
	s.println("Running Processes:")
	if s.Procs.Len() == 0 {
		s.println("No processes are currently running.")
		return nil
	}

	for id, path := range s.Procs.All() {
		s.printf("- Process: %s, PID: %d\n", path, id)
	}
	return nil
}
