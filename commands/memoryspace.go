package commands

const doingFreeSpace = "getting available free space"

func init() {
	register(&Spec{
		Kind:  KindMemorySpace,
		Name:  "memoryspace",
		Short: "Show available free space",
		Doing: doingFreeSpace,
		Run:   MemorySpace,
	})
}

// MemorySpace prints the free storage on the current volume.
func MemorySpace(s *Session, args []string) error {
	return showFreeSpace(s)
}

func showFreeSpace(s *Session) error {
	free, err := s.FS.AvailableFreeSpace(s.Cwd)
	if err != nil {
		return &FaultError{Doing: doingFreeSpace, Err: err}
	}
	s.printf("Available Free Space: %d\n", free)
	return nil
}
