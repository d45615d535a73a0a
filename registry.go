package typelog

import "sort"

// InvalidTypeHandler is invoked with the offending label each time a closed
// registry rejects it. Returning nil lets the log call proceed anyway; a
// non-nil error aborts the call with that error.
type InvalidTypeHandler func(label string) error

// TypeRegistry holds the optional closed set of permitted type labels and the
// handler to run when a label falls outside it. Both are fixed at
// construction, so one registry can back any number of Loggers without
// locking.
type TypeRegistry struct {
	permitted map[string]struct{}
	onInvalid InvalidTypeHandler
}

// NewTypeRegistry builds a registry closed over labels, or an open registry
// that validates everything when labels is empty. Duplicate labels collapse.
// Labels are matched case-sensitively; the uppercasing in the output line is
// display only. A nil handler installs the default one, which rejects with
// an InvalidTypeError.
func NewTypeRegistry(labels []string, handler InvalidTypeHandler) *TypeRegistry {
	r := &TypeRegistry{onInvalid: handler}
	if len(labels) > 0 {
		r.permitted = make(map[string]struct{}, len(labels))
		for _, l := range labels {
			r.permitted[l] = struct{}{}
		}
	}
	if r.onInvalid == nil {
		r.onInvalid = r.defaultHandler
	}
	return r
}

// Closed reports whether the registry restricts the label set.
func (r *TypeRegistry) Closed() bool { return r.permitted != nil }

// Permitted returns the permitted labels in sorted order, or nil for an open
// registry.
func (r *TypeRegistry) Permitted() []string {
	if r.permitted == nil {
		return nil
	}
	out := make([]string, 0, len(r.permitted))
	for l := range r.permitted {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// allows is the pure membership test, with no handler side effect.
func (r *TypeRegistry) allows(label string) bool {
	if r.permitted == nil {
		return true
	}
	_, ok := r.permitted[label]
	return ok
}

// Validate checks label against the permitted set. On rejection the
// invalid-type handler runs exactly once; its return value decides whether
// the caller may proceed.
func (r *TypeRegistry) Validate(label string) error {
	if r.allows(label) {
		return nil
	}
	return r.onInvalid(label)
}

func (r *TypeRegistry) defaultHandler(label string) error {
	return &InvalidTypeError{Label: label, Permitted: r.Permitted()}
}
