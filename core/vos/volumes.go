package vos

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/josephlewis42/jartos/core/config"
	"github.com/josephlewis42/jartos/core/vpath"
	"github.com/spf13/afero"
)

var (
	// ErrUnknownVolume is returned for paths whose label names no mounted volume.
	ErrUnknownVolume = errors.New("unknown volume")
	// ErrNoSpace is returned when a write would exceed the volume's capacity.
	ErrNoSpace = errors.New("not enough free space on the volume")

	errNotDir       = errors.New("not a directory")
	errIsDir        = errors.New("is a directory")
	errRemoveRoot   = errors.New("cannot remove the root of a volume")
	errInvalidLabel = errors.New("invalid volume path")
)

// Volume is a labelled, fixed capacity filesystem.
type Volume struct {
	Label    string
	FS       afero.Fs
	Capacity int64
}

// NewMemVolume creates an empty in-memory volume.
func NewMemVolume(label string, capacity int64) *Volume {
	return &Volume{Label: label, FS: afero.NewMemMapFs(), Capacity: capacity}
}

// NewDirVolume creates a volume backed by a directory on the host.
func NewDirVolume(label, dir string, capacity int64) *Volume {
	return &Volume{
		Label:    label,
		FS:       afero.NewBasePathFs(afero.NewOsFs(), dir),
		Capacity: capacity,
	}
}

// used sums the size of every regular file on the volume.
func (v *Volume) used() (int64, error) {
	var total int64
	err := afero.Walk(v.FS, "/", func(_ string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// Volumes is a FileSystem made up of labelled volumes addressed as
// <label>:\path\to\file.
type Volumes struct {
	mu      sync.Mutex
	volumes map[string]*Volume
}

var _ FileSystem = (*Volumes)(nil)

// NewVolumes creates an empty volume set.
func NewVolumes() *Volumes {
	return &Volumes{volumes: make(map[string]*Volume)}
}

// NewVolumesFromConfig builds and seeds the volumes listed in the configuration.
func NewVolumesFromConfig(configuration *config.Configuration) (*Volumes, error) {
	out := NewVolumes()
	for _, vc := range configuration.Volumes {
		var vol *Volume
		if vc.BackingDir == "" {
			vol = NewMemVolume(vc.Label, vc.CapacityBytes)
		} else {
			vol = NewDirVolume(vc.Label, configuration.ResolvePath(vc.BackingDir), vc.CapacityBytes)
		}

		if vc.Seed != "" {
			if err := seedVolume(configuration, vol, vc.Seed); err != nil {
				return nil, fmt.Errorf("seeding volume %q: %w", vc.Label, err)
			}
		}

		if err := out.Mount(vol); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func seedVolume(configuration *config.Configuration, vol *Volume, seed string) error {
	fd, err := configuration.OpenVolumeSeed(seed)
	if err != nil {
		return err
	}
	defer fd.Close()
	return ExtractTarGz(vol.FS, fd)
}

// Mount adds a volume to the set.
func (v *Volumes) Mount(vol *Volume) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.volumes[vol.Label]; ok {
		return fmt.Errorf("volume %q already mounted", vol.Label)
	}
	v.volumes[vol.Label] = vol
	return nil
}

// Labels returns the sorted labels of every mounted volume.
func (v *Volumes) Labels() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	var out []string
	for label := range v.volumes {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// resolve maps a volume path to its volume and the slash-separated path
// inside it.
func (v *Volumes) resolve(op, name string) (*Volume, string, error) {
	label, rest, ok := vpath.Split(name)
	if !ok {
		return nil, "", &fs.PathError{Op: op, Path: name, Err: errInvalidLabel}
	}

	v.mu.Lock()
	vol, ok := v.volumes[label]
	v.mu.Unlock()
	if !ok {
		return nil, "", &fs.PathError{Op: op, Path: name, Err: ErrUnknownVolume}
	}
	return vol, vpath.ToSlash(rest), nil
}

// pathErr re-labels errors from the backing filesystem with the volume path
// the caller used.
func pathErr(op, name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

func (v *Volumes) ListDir(dir string) (dirs, files []string, err error) {
	vol, rel, err := v.resolve("readdir", dir)
	if err != nil {
		return nil, nil, err
	}

	infos, err := afero.ReadDir(vol.FS, rel)
	if err != nil {
		return nil, nil, pathErr("readdir", dir, err)
	}
	for _, info := range infos {
		if info.IsDir() {
			dirs = append(dirs, info.Name())
		} else {
			files = append(files, info.Name())
		}
	}
	return dirs, files, nil
}

func (v *Volumes) Mkdir(dir string) error {
	vol, rel, err := v.resolve("mkdir", dir)
	if err != nil {
		return err
	}

	switch info, err := vol.FS.Stat(rel); {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return pathErr("mkdir", dir, fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return pathErr("mkdir", dir, err)
	}

	if err := vol.FS.MkdirAll(rel, 0777); err != nil {
		return pathErr("mkdir", dir, err)
	}
	return nil
}

func (v *Volumes) RemoveAll(dir string) error {
	vol, rel, err := v.resolve("remove", dir)
	if err != nil {
		return err
	}
	// rel is clean, so "." and ".." forms of the root land here too.
	if rel == "/" {
		return pathErr("remove", dir, errRemoveRoot)
	}

	info, err := vol.FS.Stat(rel)
	switch {
	case err != nil:
		return pathErr("remove", dir, err)
	case !info.IsDir():
		return pathErr("remove", dir, errNotDir)
	}

	if err := vol.FS.RemoveAll(rel); err != nil {
		return pathErr("remove", dir, err)
	}
	return nil
}

func (v *Volumes) DirExists(dir string) (bool, error) {
	vol, rel, err := v.resolve("stat", dir)
	if err != nil {
		return false, err
	}

	ok, err := afero.DirExists(vol.FS, rel)
	if err != nil {
		return false, pathErr("stat", dir, err)
	}
	return ok, nil
}

func (v *Volumes) FileExists(name string) (bool, error) {
	vol, rel, err := v.resolve("stat", name)
	if err != nil {
		return false, err
	}

	info, err := vol.FS.Stat(rel)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, pathErr("stat", name, err)
	}
	return !info.IsDir(), nil
}

func (v *Volumes) ReadFile(name string) ([]byte, error) {
	vol, rel, err := v.resolve("open", name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(vol.FS, rel)
	if err != nil {
		return nil, pathErr("open", name, err)
	}
	return data, nil
}

func (v *Volumes) WriteFile(name string, data []byte) error {
	vol, rel, err := v.resolve("write", name)
	if err != nil {
		return err
	}

	var existing int64
	switch info, err := vol.FS.Stat(rel); {
	case err == nil && info.IsDir():
		return pathErr("write", name, errIsDir)
	case err == nil:
		existing = info.Size()
	case !errors.Is(err, fs.ErrNotExist):
		return pathErr("write", name, err)
	}

	if ok, err := afero.DirExists(vol.FS, path.Dir(rel)); err != nil || !ok {
		return pathErr("write", name, fs.ErrNotExist)
	}

	used, err := vol.used()
	if err != nil {
		return pathErr("write", name, err)
	}
	if used-existing+int64(len(data)) > vol.Capacity {
		return pathErr("write", name, ErrNoSpace)
	}

	if err := afero.WriteFile(vol.FS, rel, data, 0666); err != nil {
		return pathErr("write", name, err)
	}
	return nil
}

func (v *Volumes) Remove(name string) error {
	vol, rel, err := v.resolve("remove", name)
	if err != nil {
		return err
	}

	info, err := vol.FS.Stat(rel)
	switch {
	case err != nil:
		return pathErr("remove", name, err)
	case info.IsDir():
		return pathErr("remove", name, errIsDir)
	}

	if err := vol.FS.Remove(rel); err != nil {
		return pathErr("remove", name, err)
	}
	return nil
}

func (v *Volumes) AvailableFreeSpace(name string) (int64, error) {
	vol, _, err := v.resolve("statfs", name)
	if err != nil {
		return 0, err
	}

	used, err := vol.used()
	if err != nil {
		return 0, pathErr("statfs", name, err)
	}
	if free := vol.Capacity - used; free > 0 {
		return free, nil
	}
	return 0, nil
}
