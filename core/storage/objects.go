package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"seed-manager/core/ingest"

	"github.com/minio/minio-go/v7"
)

// MaxObjectSize caps how much of an object ReadObject buffers.
const MaxObjectSize = 256 << 20

// ErrObjectTooLarge is returned by ReadObject for objects over MaxObjectSize.
var ErrObjectTooLarge = errors.New("object exceeds maximum import size")

// ReadObject downloads an object into memory. The returned reader is
// seekable so it can feed ingest.FromReader directly.
func ReadObject(ctx context.Context, client Client, bucket, key string) (*bytes.Reader, error) {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if len(data) > MaxObjectSize {
		return nil, fmt.Errorf("%s: %w", key, ErrObjectTooLarge)
	}
	return bytes.NewReader(data), nil
}

// Importable is an object whose extension names a known format.
type Importable struct {
	Key    string        `json:"key"`
	Format ingest.Format `json:"format"`
	Size   int64         `json:"size"`
}

// ListImportable lists objects under prefix whose extension is one of
// formats. Results are sorted by key.
func ListImportable(ctx context.Context, client Client, bucket, prefix string, formats []ingest.Format) ([]Importable, error) {
	known := make(map[ingest.Format]bool, len(formats))
	for _, f := range formats {
		known[f] = true
	}

	var out []Importable
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		f := ingest.FormatFromExtension(obj.Key)
		if !known[f] {
			continue
		}
		out = append(out, Importable{Key: obj.Key, Format: f, Size: obj.Size})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// CheckBucket returns an error unless bucket exists.
func CheckBucket(ctx context.Context, client Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
