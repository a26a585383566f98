package ingest

// Loader is the single entry point of the ingestion layer.
type Loader struct {
	registry *Registry
}

// NewLoader creates a loader that dispatches through registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// Registry returns the registry the loader dispatches through.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load resolves the handler for format and returns its result unchanged.
// It fails with ErrMissingInput before any lookup when in is absent, and with
// ErrUnsupportedFormat when no handler is registered for format.
func (l *Loader) Load(in Input, format Format) (*Result, error) {
	if in.IsZero() {
		return nil, &Error{Kind: KindMissingInput, Format: format, Detail: "no input provided"}
	}

	h, err := l.registry.Resolve(format)
	if err != nil {
		return nil, err
	}
	return h.Load(in)
}
