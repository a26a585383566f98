// Package seed inserts ingested records into database tables.
//
// Plan checks record keys against the table's columns without writing.
// Seed runs the inserts in a single transaction, in batches, so a failed
// batch leaves the table untouched. Keys are matched to columns
// case-insensitively.
package seed
