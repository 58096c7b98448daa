package commands

func init() {
	register(&Spec{
		Kind:    KindMkdir,
		Name:    "mkdir",
		MinArgs: 1,
		Usage:   "Usage: mkdir [directoryName]",
		Short:   "Create a new directory",
		Doing:   "creating directory",
		Run:     Mkdir,
	})
}

// Mkdir creates a directory, and any missing parents, under the current
// directory.
func Mkdir(s *Session, args []string) error {
	name := args[0]
	if err := s.FS.Mkdir(s.resolve(name)); err != nil {
		return err
	}
	s.printf("Directory '%s' created successfully.\n", name)
	return nil
}
