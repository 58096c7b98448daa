package commands

func init() {
	register(&Spec{
		Kind:    KindDelete,
		Name:    "delete",
		MinArgs: 1,
		Usage:   "Usage: delete [fileName]",
		Short:   "delete existing file in current directory",
		Doing:   "deleting file",
		Run:     Delete,
	})
}

func Delete(s *Session, args []string) error {
	name := args[0]
	path := s.resolve(name)

	ok, err := s.FS.FileExists(path)
	switch {
	case err != nil:
		return err
	case !ok:
		return &NotFoundError{Noun: "File", Name: name, Reason: "does not exist"}
	}

	if err := s.FS.Remove(path); err != nil {
		return err
	}
	s.printf("File '%s' deleted successfully.\n", name)
	return nil
}
