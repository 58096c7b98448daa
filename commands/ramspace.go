package commands

const bytesPerMB = 1 << 20

func init() {
	register(&Spec{
		Kind:  KindRamSpace,
		Name:  "ramspace",
		Short: "Show available free space of RAM",
		Doing: doingFreeSpace,
		Run:   RamSpace,
	})
}

// RamSpace prints available memory in megabytes and used memory in human
// readable units.
func RamSpace(s *Session, args []string) error {
	available, err := s.Memory.Available()
	if err != nil {
		return err
	}
	used, err := s.Memory.Used()
	if err != nil {
		return err
	}

	s.printf("Available Ram Space in '%s': %d MB\n", s.Cwd, available/bytesPerMB)
	s.printf("Used Ram Space : %s\n", BytesToHuman(int64(used)))
	return nil
}
