// Package csvfile implements the CSV ingestion handler.
//
// Inputs created with ingest.FromText are parsed as UTF-8 directly. Raw byte
// inputs are decoded first: the leading sample is passed to charset.Detect
// and the whole payload is decoded with the guess. A seekable stream is
// rewound to its entry offset once it has been read.
//
// The first row is the header. Data rows are zipped against it by position:
// short rows leave the trailing keys absent and extra values are dropped.
// All values are strings.
package csvfile
