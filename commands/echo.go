package commands

import "strings"

func init() {
	register(&Spec{
		Kind:     KindEcho,
		Name:     "echo",
		MinArgs:  2,
		Keywords: []string{">"},
		Usage:    "Usage: echo > [fileName] [content]",
		Short:    "Create a new file",
		Doing:    "creating file",
		Run:      Echo,
	})
}

// Echo writes the tokens after the file name, joined by single spaces, to
// the file, replacing any previous contents.
func Echo(s *Session, args []string) error {
	name := args[1]
	content := strings.Join(args[2:], " ")

	if err := s.FS.WriteFile(s.resolve(name), []byte(content)); err != nil {
		return err
	}
	s.printf("File '%s' created successfully.\n", name)
	return nil
}
