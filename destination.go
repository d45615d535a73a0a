package typelog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Mode selects how a file destination is opened.
type Mode string

const (
	// ModeAppend opens the file with O_APPEND, so concurrent appenders to
	// the same file get whole writes from the kernel.
	ModeAppend Mode = "append"
	// ModeClobber truncates the file on open.
	ModeClobber Mode = "clobber"
)

// Destination wraps one open writable sink. All writes go through a single
// mutex (zerolog.SyncWriter), so one Destination can be shared by concurrent
// writers without interleaving lines.
type Destination struct {
	w      io.Writer
	file   *os.File // nil for the standard streams
	target string
	closed atomic.Bool
}

func openDestination(target string, mode Mode) (*Destination, error) {
	switch {
	case strings.EqualFold(target, TargetStdout):
		return &Destination{w: zerolog.SyncWriter(os.Stdout), target: TargetStdout}, nil
	case strings.EqualFold(target, TargetStderr):
		return &Destination{w: zerolog.SyncWriter(os.Stderr), target: TargetStderr}, nil
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == ModeClobber {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		return nil, &IOError{Op: "open", Target: target, Err: err}
	}
	return &Destination{w: zerolog.SyncWriter(f), file: f, target: target}, nil
}

// Target reports the path or stream sentinel this Destination writes to.
func (d *Destination) Target() string { return d.target }

// Stream reports whether the sink is one of the process standard streams.
func (d *Destination) Stream() bool { return d.file == nil }

// Closed reports whether Close has been called.
func (d *Destination) Closed() bool { return d.closed.Load() }

// Write sends raw bytes to the sink, bypassing all formatting. After Close,
// writes to a stream sink are accepted and discarded; writes to a file sink
// fail with an IOError.
func (d *Destination) Write(p []byte) (int, error) {
	if d.closed.Load() {
		if d.Stream() {
			return len(p), nil
		}
		return 0, &IOError{Op: "write", Target: d.target, Err: os.ErrClosed}
	}
	n, err := d.w.Write(p)
	if err != nil {
		return n, &IOError{Op: "write", Target: d.target, Err: err}
	}
	return n, nil
}

func (d *Destination) writeLine(line string) error {
	_, err := d.Write([]byte(line))
	return err
}

// Close releases the sink. Standard streams are never actually closed.
// It's safe to call Close multiple times.
func (d *Destination) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	if d.file == nil {
		return nil
	}
	if err := d.file.Close(); err != nil {
		return &IOError{Op: "close", Target: d.target, Err: err}
	}
	return nil
}
