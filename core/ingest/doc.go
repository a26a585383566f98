// Package ingest provides the uniform record-ingestion layer of the Seed Manager.
//
// It turns a JSON, CSV or XLSX input of unknown internal structure into an
// ordered sequence of key-value records ready for downstream consumers such as
// the seeding feature.
//
// # Components
//
//   - Record / RecordSet: ordered field-name to value mappings, in source row order.
//   - Handler: the per-format contract. Every handler accepts a filesystem path
//     or an open stream through the same Input value.
//   - Registry: maps a Format to exactly one Handler. Lookups of unregistered
//     formats fail closed with ErrUnsupportedFormat.
//   - Loader: the facade. It rejects absent input, resolves the handler and
//     returns the handler's result unchanged.
//
// # Extending
//
// Adding a format only requires implementing Handler and registering it:
//
//	reg := ingest.NewRegistry()
//	reg.Register("tsv", tsv.NewHandler(tsv.Options{}))
//	res, err := ingest.NewLoader(reg).Load(ingest.FromPath("people.tsv"), "tsv")
//
// The concrete handlers live in the jsonfile, csvfile and xlsxfile
// sub-packages; the builtin sub-package wires all three.
//
// # Errors
//
// Every failure is an *Error carrying a Kind. Callers branch with errors.Is
// against the Err* sentinels or with KindOf, and translate kinds into
// user-facing messages themselves.
package ingest
