// Package proctable tracks launch records for the shell's run command.
//
// A launch record is bookkeeping only, nothing is executed. Records are
// identified by their position in the table at the time of the query, so
// terminating a record renumbers every record after it.
package proctable

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/josephlewis42/jartos/core/vpath"
)

// DefaultSuffix is the only executable suffix accepted unless configured
// otherwise.
const DefaultSuffix = ".exe"

// ErrNotLaunchable is returned by Launch when the target is missing or does
// not carry an accepted suffix.
var ErrNotLaunchable = errors.New("not found or not supported")

// InvalidIDError is returned by Terminate for malformed or out of range ids.
type InvalidIDError struct {
	Token string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid process ID: %s", e.Token)
}

// FileChecker reports whether a regular file exists at an absolute path.
type FileChecker interface {
	FileExists(path string) (bool, error)
}

// LaunchRecord represents one invocation of run.
type LaunchRecord struct {
	// ExecutablePath is the argument as given, it is not canonicalized.
	ExecutablePath string
	// Running is false once the record has been terminated.
	Running bool
}

// Table is an ordered registry of launch records. It is owned by a single
// shell and is not safe for concurrent use.
type Table struct {
	files    FileChecker
	suffixes []string
	records  []*LaunchRecord
}

// New creates an empty table. If no suffixes are given only DefaultSuffix is
// accepted.
func New(files FileChecker, suffixes ...string) *Table {
	if len(suffixes) == 0 {
		suffixes = []string{DefaultSuffix}
	}

	return &Table{
		files:    files,
		suffixes: append([]string(nil), suffixes...),
	}
}

// Launchable reports whether name carries an accepted suffix. Matching is case
// sensitive.
func (t *Table) Launchable(name string) bool {
	for _, suffix := range t.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Launch registers a new running record for path, resolved against cwd, and
// returns its current positional id.
//
// The table is left untouched if the file doesn't exist, has an unaccepted
// suffix or the existence check fails.
func (t *Table) Launch(cwd, path string) (int, error) {
	exists, err := t.files.FileExists(vpath.Join(cwd, path))
	switch {
	case err != nil:
		return 0, fmt.Errorf("checking %q: %w", path, err)
	case !exists, !t.Launchable(path):
		return 0, ErrNotLaunchable
	}

	t.records = append(t.records, &LaunchRecord{
		ExecutablePath: path,
		Running:        true,
	})
	return len(t.records) - 1, nil
}

// Len returns the number of live records.
func (t *Table) Len() int {
	return len(t.records)
}

// All enumerates (id, path) pairs of the live records in table order. The
// sequence can be ranged over any number of times and reflects the table at
// the time each iteration runs.
func (t *Table) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, rec := range t.records {
			if !yield(i, rec.ExecutablePath) {
				return
			}
		}
	}
}

// Terminate parses idToken as a positional id, marks that record stopped and
// removes it from the table. Records after it move down by one. The removed
// record's path is returned.
func (t *Table) Terminate(idToken string) (string, error) {
	id, err := strconv.Atoi(idToken)
	if err != nil || id < 0 || id >= len(t.records) {
		return "", &InvalidIDError{Token: idToken}
	}

	rec := t.records[id]
	rec.Running = false
	t.records = slices.Delete(t.records, id, id+1)
	return rec.ExecutablePath, nil
}
