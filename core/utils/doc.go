// Package utils provides value conversion helpers for the seed-manager.
//
// Records carry untyped values (strings from CSV, float64 from JSON, typed
// cells from XLSX). These helpers render them for table output and read
// flag-like values without caring which format produced them.
package utils
