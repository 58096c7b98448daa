package commands

func init() {
	register(&Spec{
		Kind:  KindHelp,
		Name:  "help",
		Short: "Show available commands",
		Doing: "showing help",
		Run:   Help,
	})
}

// Help prints every command with its description.
func Help(s *Session, args []string) error {
	s.println("Available commands:")
	for _, spec := range AllCommands() {
		s.printf("%-13s- %s\n", spec.Name, spec.Short)
	}
	return nil
}
