// Package jsonfile implements the JSON ingestion handler.
//
// The whole document is read into memory and parsed with goccy/go-json. The
// parsed value is returned as Result.Raw exactly as decoded. When the root is
// an object it also becomes a single record, and when it is an array whose
// elements are all objects each element becomes one record. Record keys keep
// the member order of the document.
//
// A path without a .json extension is logged as a warning and loaded anyway.
package jsonfile
