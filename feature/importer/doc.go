// Package importer exposes the ingestion layer over HTTP.
//
// # Routes
//
//   - GET  /import/formats            registered formats
//   - GET  /import/objects?prefix=    importable objects in the bucket
//   - POST /import/:format            multipart "file" field or raw body
//   - POST /import/:format/object     object from the bucket (?key=)
//
// # Errors
//
// Failures are answered with {"error": ..., "kind": ...}. StatusFor maps the
// ingestion error kinds to status codes: missing or unreadable input is 400,
// an unregistered format is 415 and malformed content is 422.
package importer
