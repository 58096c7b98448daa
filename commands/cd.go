package commands

import (
	"errors"

	"github.com/josephlewis42/jartos/core/vpath"
)

func init() {
	register(&Spec{
		Kind:    KindCd,
		Name:    "cd",
		MinArgs: 1,
		Usage:   "Usage: cd [directoryName]",
		Short:   "Change the current directory",
		Doing:   "changing directory",
		Run:     Cd,
	})
}

// Cd changes the current directory. ".." moves to the parent without
// checking the filesystem, anything else must name an existing directory.
func Cd(s *Session, args []string) error {
	name := args[0]

	target, err := vpath.Resolve(s.Cwd, name, s.RootPolicy)
	switch {
	case errors.Is(err, vpath.ErrAboveRoot):
		return &InvalidPathError{Path: name, Err: err}
	case err != nil:
		return err
	}

	if name != ".." {
		ok, err := s.FS.DirExists(target)
		switch {
		case err != nil:
			return err
		case !ok:
			return &NotFoundError{Noun: "Directory", Name: name, Reason: "does not exist"}
		}
	}

	s.Cwd = target
	s.printf("Current directory: %s\n", s.Cwd)
	return nil
}
