package ingest

// Handler converts one input of a specific format into records.
type Handler interface {
	// Load reads the whole input. Path and stream inputs must both be accepted.
	// It either returns the complete result or an *Error, never both.
	Load(in Input) (*Result, error)

	// MultipleCollections reports whether a single file of this format can
	// hold several independent record collections. The flag is advisory for
	// callers composing import pipelines and is not enforced.
	MultipleCollections() bool
}

// Result is the output of a handler.
type Result struct {
	// Records holds the normalized rows in source order. It is nil when a
	// structured document has no record shape.
	Records RecordSet

	// Raw is the parsed document for structured formats (JSON), exactly as
	// parsed. It is nil for tabular formats.
	Raw any
}

// RecordSet returns the normalized records, or ErrUnsupportedConstruct when
// the document was parsed but could not be shaped into records.
func (r *Result) RecordSet() (RecordSet, error) {
	if r.Records == nil && r.Raw != nil {
		return nil, &Error{
			Kind:   KindUnsupportedConstruct,
			Detail: "document root is neither an object nor an array of objects",
		}
	}
	return r.Records, nil
}

// Len returns the number of records.
func (r *Result) Len() int {
	return len(r.Records)
}
