package vos

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVolumes(t *testing.T, capacity int64) *Volumes {
	t.Helper()

	v := NewVolumes()
	require.NoError(t, v.Mount(NewMemVolume("0", capacity)))
	require.NoError(t, v.Mount(NewMemVolume("1", capacity)))
	return v
}

func TestVolumes_Mount(t *testing.T) {
	v := newTestVolumes(t, 100)

	assert.Equal(t, []string{"0", "1"}, v.Labels())
	assert.Error(t, v.Mount(NewMemVolume("1", 100)))
}

func TestVolumes_ListDir(t *testing.T) {
	v := newTestVolumes(t, 100)
	require.NoError(t, v.Mkdir(`0:\b`))
	require.NoError(t, v.Mkdir(`0:\a`))
	require.NoError(t, v.WriteFile(`0:\z.txt`, []byte("z")))
	require.NoError(t, v.WriteFile(`0:\y.txt`, []byte("y")))
	require.NoError(t, v.WriteFile(`0:\a\nested.txt`, []byte("n")))

	dirs, files, err := v.ListDir(`0:\`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dirs)
	assert.Equal(t, []string{"y.txt", "z.txt"}, files)

	dirs, files, err = v.ListDir(`0:\a`)
	require.NoError(t, err)
	assert.Empty(t, dirs)
	assert.Equal(t, []string{"nested.txt"}, files)

	_, _, err = v.ListDir(`0:\missing`)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestVolumes_UnknownVolume(t *testing.T) {
	v := newTestVolumes(t, 100)

	_, err := v.DirExists(`9:\`)
	assert.ErrorIs(t, err, ErrUnknownVolume)

	_, err = v.DirExists(`no-label`)
	assert.Error(t, err)
}

func TestVolumes_Mkdir(t *testing.T) {
	v := newTestVolumes(t, 100)

	require.NoError(t, v.Mkdir(`0:\a\b\c`))
	ok, err := v.DirExists(`0:\a\b`)
	require.NoError(t, err)
	assert.True(t, ok)

	// Existing directories are fine.
	assert.NoError(t, v.Mkdir(`0:\a`))

	require.NoError(t, v.WriteFile(`0:\f`, nil))
	assert.ErrorIs(t, v.Mkdir(`0:\f`), fs.ErrExist)
}

func TestVolumes_RemoveAll(t *testing.T) {
	v := newTestVolumes(t, 100)
	require.NoError(t, v.Mkdir(`0:\a\b`))
	require.NoError(t, v.WriteFile(`0:\a\b\f.txt`, []byte("x")))
	require.NoError(t, v.WriteFile(`0:\file`, []byte("x")))

	require.NoError(t, v.RemoveAll(`0:\a`))
	ok, err := v.DirExists(`0:\a`)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, v.RemoveAll(`0:\a`), fs.ErrNotExist)
	assert.Error(t, v.RemoveAll(`0:\file`))
	assert.Error(t, v.RemoveAll(`0:\`))
}

func TestVolumes_RemoveAllRefusesRoot(t *testing.T) {
	rootForms := []string{`0:\`, `0:\.`, `0:\..`, `0:\a\..`, `0:\a\..\..`, `0:/a/../`, `0:\.\a\..`}

	cases := map[string]func(t *testing.T) *Volume{
		"memory": func(t *testing.T) *Volume {
			return NewMemVolume("0", 100)
		},
		"directory": func(t *testing.T) *Volume {
			return NewDirVolume("0", t.TempDir(), 100)
		},
	}

	for tn, newVolume := range cases {
		t.Run(tn, func(t *testing.T) {
			vol := newVolume(t)
			v := NewVolumes()
			require.NoError(t, v.Mount(vol))
			require.NoError(t, v.Mkdir(`0:\a`))
			require.NoError(t, v.Mkdir(`0:\keep`))
			require.NoError(t, v.WriteFile(`0:\keep.txt`, []byte("x")))

			for _, dir := range rootForms {
				err := v.RemoveAll(dir)
				assert.ErrorIs(t, err, errRemoveRoot, dir)
				assert.Contains(t, fmt.Sprint(err), "cannot remove the root of a volume")
			}

			for _, dir := range []string{`0:\a`, `0:\keep`} {
				ok, err := v.DirExists(dir)
				require.NoError(t, err)
				assert.True(t, ok, dir)
			}
			ok, err := v.FileExists(`0:\keep.txt`)
			require.NoError(t, err)
			assert.True(t, ok)

			// The backing directory itself is still there.
			info, err := vol.FS.Stat("/")
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestVolumes_DotDotStaysOnVolume(t *testing.T) {
	v := newTestVolumes(t, 100)
	require.NoError(t, v.Mkdir(`0:\a\b`))
	require.NoError(t, v.Mkdir(`0:\c`))

	require.NoError(t, v.RemoveAll(`0:\a\b\..\..\c`))

	ok, err := v.DirExists(`0:\c`)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.DirExists(`0:\a\b`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVolumes_FileExists(t *testing.T) {
	v := newTestVolumes(t, 100)
	require.NoError(t, v.Mkdir(`0:\dir`))
	require.NoError(t, v.WriteFile(`0:\file`, nil))

	cases := map[string]bool{
		`0:\dir`:     false,
		`0:\file`:    true,
		`0:\missing`: false,
		`1:\file`:    false,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := v.FileExists(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestVolumes_ReadWrite(t *testing.T) {
	v := newTestVolumes(t, 100)

	require.NoError(t, v.WriteFile(`0:\note.txt`, []byte("first")))
	require.NoError(t, v.WriteFile(`0:\note.txt`, []byte("second")))

	got, err := v.ReadFile(`0:\note.txt`)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	_, err = v.ReadFile(`0:\missing.txt`)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Parents aren't created implicitly.
	assert.ErrorIs(t, v.WriteFile(`0:\nodir\f.txt`, nil), fs.ErrNotExist)

	require.NoError(t, v.Mkdir(`0:\dir`))
	assert.Error(t, v.WriteFile(`0:\dir`, []byte("x")))
}

func TestVolumes_Remove(t *testing.T) {
	v := newTestVolumes(t, 100)
	require.NoError(t, v.WriteFile(`0:\f`, []byte("x")))
	require.NoError(t, v.Mkdir(`0:\d`))

	require.NoError(t, v.Remove(`0:\f`))
	ok, err := v.FileExists(`0:\f`)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, v.Remove(`0:\f`), fs.ErrNotExist)
	assert.Error(t, v.Remove(`0:\d`))
}

func TestVolumes_Capacity(t *testing.T) {
	v := newTestVolumes(t, 10)

	free, err := v.AvailableFreeSpace(`0:\`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, free)

	require.NoError(t, v.WriteFile(`0:\a`, []byte("123456")))
	free, err = v.AvailableFreeSpace(`0:\sub\dir`)
	require.NoError(t, err)
	assert.EqualValues(t, 4, free)

	err = v.WriteFile(`0:\b`, []byte("12345"))
	assert.True(t, errors.Is(err, ErrNoSpace), "got %v", err)

	// Overwrites only count the difference.
	require.NoError(t, v.WriteFile(`0:\a`, []byte("1234567890")))

	// Volumes are independent.
	free, err = v.AvailableFreeSpace(`1:\`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, free)
}

func TestVolumes_ErrorPaths(t *testing.T) {
	v := newTestVolumes(t, 10)

	_, err := v.ReadFile(`0:\docs\missing.txt`)
	var pe *fs.PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, `0:\docs\missing.txt`, pe.Path)
}
