package typelog

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Logger is the facade developers hold: one Destination, one TypeRegistry
// and the dispatch table of fast-path type entry points.
type Logger struct {
	dest     *Destination
	registry *TypeRegistry

	mu    sync.RWMutex
	table map[string]TypeFunc

	closed atomic.Bool
}

// Call depths handed to callerAt. The generic Log path and a TypeFunc
// closure each sit two frames below the user call site; emit adds the one
// extra hop it introduces itself.
const (
	logCallDepth  = 2
	typeCallDepth = 2
)

// Open validates cfg, opens the destination and returns a ready Logger. On
// any error no Logger is returned; construction never yields a half-valid
// facade.
func Open(cfg Config) (*Logger, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	reg := cfg.Registry
	if reg == nil {
		reg = NewTypeRegistry(cfg.Types, cfg.InvalidType)
	}

	dest, err := openDestination(cfg.File, cfg.Mode)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		dest:     dest,
		registry: reg,
		table:    make(map[string]TypeFunc),
	}

	// Lost handles still release the underlying file.
	runtime.SetFinalizer(l, (*Logger).Close)
	return l, nil
}

// Log writes one formatted entry under typeLabel. An empty label or message
// is deliberately a silent no-op. The entry's caller location is Log's
// caller.
func (l *Logger) Log(typeLabel, message string) error {
	if l == nil {
		return nil
	}
	return l.emit(typeLabel, message, logCallDepth)
}

// emit is the interception path: validate, then hand off to write. calldepth
// addresses the user call site as seen from emit's caller.
func (l *Logger) emit(label, message string, calldepth int) error {
	if label == emptyString || message == emptyString {
		return nil
	}
	if err := l.registry.Validate(label); err != nil {
		return err
	}
	return l.write(label, message, calldepth+1)
}

// write captures the caller calldepth frames above itself, formats the entry
// and sends it to the destination.
func (l *Logger) write(label, message string, calldepth int) error {
	ci := callerAt(calldepth)
	return l.dest.writeLine(formatEntry(time.Now(), label, message, ci))
}

// Destination exposes the raw sink so callers can push pre-formatted text
// into the same file, bypassing the line format entirely.
func (l *Logger) Destination() *Destination { return l.dest }

// Registry returns the read-only type registry backing this Logger.
func (l *Logger) Registry() *TypeRegistry { return l.registry }

// Close releases the Destination and moves the Logger to its terminal state.
// Log calls on a closed file-backed Logger fail with an IOError; on a
// stream-backed Logger they are accepted as no-ops, since the stream itself
// is never closed. It's safe to call Close multiple times.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	runtime.SetFinalizer(l, nil)
	return l.dest.Close()
}
