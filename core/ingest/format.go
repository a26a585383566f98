package ingest

import (
	"path/filepath"
	"strings"
)

// Format identifies an input format. The built-in set is closed; new
// identifiers only gain meaning by registering a Handler for them.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalizes a caller supplied identifier (" CSV " -> "csv").
func ParseFormat(s string) Format {
	return Format(strings.ToLower(strings.TrimSpace(s)))
}

// FormatFromExtension returns the format named by the extension of path, or
// an empty Format when the path has no extension. It is a hint for listing
// sources; the Loader never guesses formats.
func FormatFromExtension(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseFormat(ext)
}

func (f Format) String() string {
	return string(f)
}
