package commands

func init() {
	register(&Spec{
		Kind:  KindCollect,
		Name:  "collect",
		Short: "Perform garbage collection",
		Doing: "during garbage collection",
		Run:   Collect,
	})
}

func Collect(s *Session, args []string) error {
	freed, err := s.Memory.Collect()
	if err != nil {
		return err
	}
	s.printf("Garbage collection completed. Freed %d objects.\n", freed)
	return nil
}
