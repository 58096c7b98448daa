package commands

func init() {
	register(&Spec{
		Kind:    KindRmdir,
		Name:    "rmdir",
		MinArgs: 1,
		Usage:   "Usage: rmdir [directoryName]",
		Short:   "Remove a directory",
		Doing:   "removing directory",
		Run:     Rmdir,
	})
}

// Rmdir removes a directory and everything under it.
func Rmdir(s *Session, args []string) error {
	name := args[0]
	if err := s.FS.RemoveAll(s.resolve(name)); err != nil {
		return err
	}
	s.printf("Directory '%s' removed successfully.\n", name)
	return nil
}
