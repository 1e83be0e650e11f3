// Package iostreams wraps the process's standard streams so commands can
// be tested against in-memory buffers.
package iostreams

import (
	"bytes"
	"io"
	"os"
)

// IOStreams provides access to standard input/output/error streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// System creates an IOStreams connected to the real standard streams.
func System() *IOStreams {
	return &IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// Test creates an IOStreams backed by buffers, returning the stdout and
// stderr buffers for assertions.
func Test() (ios *IOStreams, out, errOut *bytes.Buffer) {
	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	ios = &IOStreams{
		In:     &bytes.Buffer{},
		Out:    out,
		ErrOut: errOut,
	}
	return ios, out, errOut
}
