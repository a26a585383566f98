// Package xlsxfile implements the XLSX ingestion handler on top of excelize.
//
// Only the active sheet is read (the first sheet when none is marked active).
// Cell values keep their type: bool, int64, float64, string, or nil for an
// empty cell. Each data row is padded to the header width and zipped against
// the header, so every record carries every header key. A sheet holding only
// a header, or nothing at all, yields an empty record set.
//
// Any failure to open or read the workbook is reported as
// ingest.ErrSpreadsheetUnreadable wrapping the excelize error.
package xlsxfile
