package typelog

import "strings"

// TypeFunc is a log entry point bound to one type label.
type TypeFunc func(message string) error

// nopType is returned for names that must never become log calls.
func nopType(string) error { return nil }

// Type resolves name to its entry point. The first resolution of a permitted
// label builds a closure that skips validation and caches it in the dispatch
// table; later lookups return the cached closure directly. Labels outside a
// closed registry are never cached, so the invalid-type handler runs once
// per invocation. A name spelled like the teardown method resolves to a
// no-op rather than a log entry point.
func (l *Logger) Type(name string) TypeFunc {
	if l == nil || name == emptyString || strings.EqualFold(name, "close") {
		return nopType
	}

	l.mu.RLock()
	fn, ok := l.table[name]
	l.mu.RUnlock()
	if ok {
		return fn
	}

	if !l.registry.allows(name) {
		// Interception path: full validation on every call.
		return func(message string) error {
			return l.emit(name, message, typeCallDepth)
		}
	}

	// Fast path: the registry is immutable, so membership cannot change and
	// the cached closure skips validation outright.
	fn = func(message string) error {
		if message == emptyString {
			return nil
		}
		return l.write(name, message, typeCallDepth)
	}

	l.mu.Lock()
	if cached, ok := l.table[name]; ok {
		// Lost a concurrent insert; every entry point for a label is
		// behaviorally identical, so either closure will do.
		fn = cached
	} else {
		l.table[name] = fn
	}
	l.mu.Unlock()

	return fn
}
