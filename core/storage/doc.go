// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so import sources can be fetched from AWS S3
// or a self-hosted MinIO instance instead of the local filesystem.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - ReadObject: downloads an object into a seekable in-memory reader.
//   - ListImportable: lists objects whose extension names a registered format.
//   - CheckBucket: verifies the configured bucket exists.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	r, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "seeds/people.csv")
//	res, err := loader.Load(ingest.FromReader(r), ingest.FormatCSV)
package storage
