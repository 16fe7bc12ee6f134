package cli

import (
	"io"
	"os"

	"github.com/aretw0/winnow/internal/config"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config    config.Config
	JSON      bool
	Markdown  bool
	Debug     bool
	TracePath string

	// Streams default to the process Stdin, Stdout and Stderr.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (o *RunOptions) streams() (io.Reader, io.Writer, io.Writer) {
	in, out, errOut := o.In, o.Out, o.Err
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}
