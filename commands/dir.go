package commands

func init() {
	register(&Spec{
		Kind:  KindDir,
		Name:  "dir",
		Short: "List files and directories in the current directory",
		Doing: "listing files",
		Run:   Dir,
	})
}

// Dir lists the subdirectories then the files of the current directory,
// followed by the free space on its volume.
func Dir(s *Session, args []string) error {
	s.printf("Contents of directory %s:\n", s.Cwd)

	dirs, files, err := s.FS.ListDir(s.Cwd)
	if err != nil {
		return err
	}
	for _, name := range dirs {
		s.printf("[DIR] %s\n", s.Color.Sprintf(ColorBoldBlue, "%s", name))
	}
	for _, name := range files {
		if s.Procs.Launchable(name) {
			name = s.Color.Sprintf(ColorBoldGreen, "%s", name)
		}
		s.printf("[FILE] %s\n", name)
	}

	return showFreeSpace(s)
}
