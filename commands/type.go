package commands

func init() {
	register(&Spec{
		Kind:    KindType,
		Name:    "type",
		MinArgs: 1,
		Usage:   "Usage: type [fileName]",
		Short:   "View file contents",
		Doing:   "viewing file contents",
		Run:     Type,
	})
}

// Type prints a file's contents.
func Type(s *Session, args []string) error {
	name := args[0]
	path := s.resolve(name)

	ok, err := s.FS.FileExists(path)
	switch {
	case err != nil:
		return err
	case !ok:
		return &NotFoundError{Noun: "File", Name: name, Reason: "does not exist"}
	}

	contents, err := s.FS.ReadFile(path)
	if err != nil {
		return err
	}
	s.printf("File contents of '%s':\n", name)
	s.printf("%s\n", contents)
	return nil
}
