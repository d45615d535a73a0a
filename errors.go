package typelog

import (
	"errors"
	"fmt"
)

// ConfigError reports malformed construction arguments. Open never returns a
// Logger alongside one.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("typelog: %s: %v", e.Reason, e.Err)
	}
	return "typelog: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IOError reports a sink that could not be opened, closed, or written to. It
// carries the underlying system error when one exists.
type IOError struct {
	Op     string // "open", "write" or "close"
	Target string
	Err    error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("typelog: %s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("typelog: %s %s", e.Op, e.Target)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidTypeError is what the default invalid-type handler returns when a
// closed registry rejects a label.
type InvalidTypeError struct {
	Label     string
	Permitted []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("typelog: %q is not a permitted log type (permitted: %v); "+
		"add it to Config.Types or install a custom InvalidType handler",
		e.Label, e.Permitted)
}

// AsConfigError reports whether err has a *ConfigError in its chain.
func AsConfigError(err error) (*ConfigError, bool) {
	var e *ConfigError
	ok := errors.As(err, &e)
	return e, ok
}

// AsIOError reports whether err has an *IOError in its chain.
func AsIOError(err error) (*IOError, bool) {
	var e *IOError
	ok := errors.As(err, &e)
	return e, ok
}

// AsInvalidTypeError reports whether err has an *InvalidTypeError in its chain.
func AsInvalidTypeError(err error) (*InvalidTypeError, bool) {
	var e *InvalidTypeError
	ok := errors.As(err, &e)
	return e, ok
}
