package ingest

import "sort"

// Registry maps format identifiers to handler instances.
//
// It performs no locking: populate it once at startup, then treat it as
// read-only. Concurrent Register calls, or Register concurrent with Resolve,
// need external synchronization.
type Registry struct {
	handlers map[Format]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Format]Handler)}
}

// Register stores the handler for format. A later registration for the same
// format replaces the earlier one. The handler is not validated.
func (r *Registry) Register(format Format, h Handler) {
	r.handlers[format] = h
}

// Resolve returns the handler registered for format, or an
// ErrUnsupportedFormat error when there is none.
func (r *Registry) Resolve(format Format) (Handler, error) {
	h, ok := r.handlers[format]
	if !ok {
		return nil, UnsupportedFormat(format)
	}
	return h, nil
}

// Formats returns the registered identifiers.
// Sorted alphabetically.
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.handlers))
	for f := range r.handlers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
