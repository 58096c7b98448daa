package vos

import (
	"bytes"
	"io"
)

// VIO holds the standard streams of a shell session.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VIOAdapter is a VIO over plain readers and writers.
type VIOAdapter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
	stderr io.WriteCloser
}

var _ VIO = (*VIOAdapter)(nil)

// NewVIOAdapter wraps the given streams. Streams that can't be closed get a
// no-op Close, a nil stdin reads as empty and nil writers discard.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}

	return &VIOAdapter{
		stdin:  asReadCloser(stdin),
		stdout: asWriteCloser(stdout),
		stderr: asWriteCloser(stderr),
	}
}

func (a *VIOAdapter) Stdin() io.ReadCloser   { return a.stdin }
func (a *VIOAdapter) Stdout() io.WriteCloser { return a.stdout }
func (a *VIOAdapter) Stderr() io.WriteCloser { return a.stderr }

func asReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func asWriteCloser(w io.Writer) io.WriteCloser {
	switch w := w.(type) {
	case nil:
		return nopWriteCloser{io.Discard}
	case io.WriteCloser:
		return w
	default:
		return nopWriteCloser{w}
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
