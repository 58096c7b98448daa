// Package vos provides the services the shell core depends on but does not
// implement: volumes, memory statistics, power and authentication.
package vos

// FileSystem is the storage service used by shell commands. Paths are
// absolute volume paths such as 0:\docs\a.txt.
type FileSystem interface {
	// ListDir returns the names of the subdirectories and files of dir, each
	// sorted by name.
	ListDir(dir string) (dirs, files []string, err error)
	// Mkdir creates dir and any missing parents. It is not an error if dir
	// already exists as a directory.
	Mkdir(dir string) error
	// RemoveAll removes dir and everything under it.
	RemoveAll(dir string) error
	// DirExists reports whether dir exists and is a directory.
	DirExists(dir string) (bool, error)
	// FileExists reports whether name exists and is a regular file.
	FileExists(name string) (bool, error)
	// ReadFile returns the whole contents of name.
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates name and writes data to it.
	WriteFile(name string, data []byte) error
	// Remove deletes the file name.
	Remove(name string) error
	// AvailableFreeSpace returns the free bytes on the volume holding name.
	AvailableFreeSpace(name string) (int64, error)
}

// Memory reports and reclaims memory.
type Memory interface {
	// Available returns the number of bytes that can still be allocated.
	Available() (uint64, error)
	// Used returns the number of bytes in use.
	Used() (uint64, error)
	// Collect runs a reclamation cycle and returns the number of freed objects.
	Collect() (int, error)
}

// Power controls the machine's power state.
type Power interface {
	// Shutdown turns the machine off.
	Shutdown()
}

// PowerFunc adapts a function to the Power interface.
type PowerFunc func()

// Shutdown implements Power.Shutdown.
func (f PowerFunc) Shutdown() {
	f()
}

var _ Power = (PowerFunc)(nil)

// Authenticator checks login credentials.
type Authenticator interface {
	CheckCredentials(username, password string) bool
}
