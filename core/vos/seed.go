package vos

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// ExtractTarGz unpacks a gzipped tarball onto vfs. Directories and regular
// files are extracted; links and devices are skipped.
func ExtractTarGz(vfs afero.Fs, r io.Reader) error {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gr.Close()

	return ExtractTar(vfs, tar.NewReader(gr))
}

// ExtractTar unpacks a tarball onto vfs.
func ExtractTar(vfs afero.Fs, t *tar.Reader) error {
	for {
		hdr, err := t.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := extractEntry(vfs, hdr, t); err != nil {
			return fmt.Errorf("extracting %q: %v", hdr.Name, err)
		}
	}
}

func extractEntry(vfs afero.Fs, hdr *tar.Header, r io.Reader) error {
	name := path.Clean("/" + hdr.Name)
	if name == "/" {
		return nil
	}

	// Make parents
	if err := vfs.MkdirAll(path.Dir(name), 0777); err != nil {
		return err
	}

	mode := hdr.FileInfo().Mode()
	switch {
	case mode.IsDir():
		if err := vfs.Mkdir(name, mode.Perm()); err != nil && !os.IsExist(err) {
			return err
		}
	case mode.IsRegular():
		fd, err := vfs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, mode.Perm())
		if err != nil {
			return err
		}
		// Don't defer the close because it'll update the modification time.
		if _, err := io.CopyN(fd, r, hdr.Size); err != nil {
			fd.Close()
			return err
		}
		if err := fd.Close(); err != nil {
			return err
		}
	default:
		return nil
	}

	modTime := hdr.FileInfo().ModTime()
	return vfs.Chtimes(name, modTime, modTime)
}
