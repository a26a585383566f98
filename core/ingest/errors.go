package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an ingestion failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMissingInput means no input was provided to the Loader.
	KindMissingInput
	// KindUnsupportedFormat means no handler is registered for the format.
	KindUnsupportedFormat
	// KindMalformedJSON means the JSON document has a syntax error.
	KindMalformedJSON
	// KindSourceUnreadable means the path could not be opened or the stream read.
	KindSourceUnreadable
	// KindMalformedCSV means a CSV row could not be parsed.
	KindMalformedCSV
	// KindEncodingUndetectable means no usable charset guess exists for the bytes.
	KindEncodingUndetectable
	// KindSpreadsheetUnreadable means the workbook container could not be opened or parsed.
	KindSpreadsheetUnreadable
	// KindUnsupportedConstruct means the input is well formed but has no record shape.
	KindUnsupportedConstruct
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindUnsupportedFormat:
		return "unsupported_format"
	case KindMalformedJSON:
		return "malformed_json"
	case KindSourceUnreadable:
		return "source_unreadable"
	case KindMalformedCSV:
		return "malformed_csv"
	case KindEncodingUndetectable:
		return "encoding_undetectable"
	case KindSpreadsheetUnreadable:
		return "spreadsheet_unreadable"
	case KindUnsupportedConstruct:
		return "unsupported_construct"
	default:
		return "unknown"
	}
}

// Class groups kinds by what went wrong with the input.
type Class int

const (
	ClassUnknown Class = iota
	// ClassMissing: nothing to read.
	ClassMissing
	// ClassMalformed: the input was read but its content is invalid.
	ClassMalformed
	// ClassUnreadable: the input could not be opened or read.
	ClassUnreadable
	// ClassUnsupported: the format or the input's shape is not supported.
	ClassUnsupported
)

// String returns the string representation of Class
func (c Class) String() string {
	switch c {
	case ClassMissing:
		return "missing"
	case ClassMalformed:
		return "malformed"
	case ClassUnreadable:
		return "unreadable"
	case ClassUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Class returns the class the kind belongs to.
func (k Kind) Class() Class {
	switch k {
	case KindMissingInput:
		return ClassMissing
	case KindMalformedJSON, KindMalformedCSV, KindEncodingUndetectable:
		return ClassMalformed
	case KindSourceUnreadable, KindSpreadsheetUnreadable:
		return ClassUnreadable
	case KindUnsupportedFormat, KindUnsupportedConstruct:
		return ClassUnsupported
	default:
		return ClassUnknown
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMissingInput          = &Error{Kind: KindMissingInput}
	ErrUnsupportedFormat     = &Error{Kind: KindUnsupportedFormat}
	ErrMalformedJSON         = &Error{Kind: KindMalformedJSON}
	ErrSourceUnreadable      = &Error{Kind: KindSourceUnreadable}
	ErrMalformedCSV          = &Error{Kind: KindMalformedCSV}
	ErrEncodingUndetectable  = &Error{Kind: KindEncodingUndetectable}
	ErrSpreadsheetUnreadable = &Error{Kind: KindSpreadsheetUnreadable}
	ErrUnsupportedConstruct  = &Error{Kind: KindUnsupportedConstruct}
)

// Error is the single error type returned by the ingestion layer.
type Error struct {
	Kind   Kind
	Format Format
	// Source is the input path, or "<stream>".
	Source string
	// Line is the 1-based source line when known (CSV).
	Line   int
	Detail string
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Format != "" {
		fmt.Fprintf(&b, " [%s]", e.Format)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " %s", e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	switch {
	case e.Detail != "" && e.Err != nil:
		fmt.Fprintf(&b, ": %s: %v", e.Detail, e.Err)
	case e.Detail != "":
		fmt.Fprintf(&b, ": %s", e.Detail)
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so the Err* sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return KindUnknown
}

// UnsupportedFormat builds the error returned for an unregistered format.
func UnsupportedFormat(format Format) *Error {
	return &Error{
		Kind:   KindUnsupportedFormat,
		Format: format,
		Detail: fmt.Sprintf("format %q has no registered handler", format),
	}
}
