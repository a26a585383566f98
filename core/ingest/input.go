package ingest

import (
	"io"
	"os"
)

// streamName is used as the source label for inputs that have no path.
const streamName = "<stream>"

// Input is either a filesystem path or an open stream. The zero value is an
// absent input.
type Input struct {
	path   string
	reader io.Reader
	text   bool
}

// FromPath returns an input that reads the file at path.
func FromPath(path string) Input {
	return Input{path: path}
}

// FromReader returns an input over raw bytes of unknown text encoding.
func FromReader(r io.Reader) Input {
	return Input{reader: r}
}

// FromText returns an input over a stream that is already decoded UTF-8 text.
// Text-aware handlers skip encoding detection for it.
func FromText(r io.Reader) Input {
	return Input{reader: r, text: true}
}

// IsZero reports whether no input was provided.
func (in Input) IsZero() bool {
	return in.path == "" && in.reader == nil
}

// Path returns the filesystem path, or "" for stream inputs.
func (in Input) Path() string {
	return in.path
}

// Reader returns the stream, or nil for path inputs.
func (in Input) Reader() io.Reader {
	return in.reader
}

// IsText reports whether the stream was declared as decoded text.
func (in Input) IsText() bool {
	return in.text
}

// Name returns a label for error messages and logs.
func (in Input) Name() string {
	if in.path != "" {
		return in.path
	}
	return streamName
}

// Open returns a reader over the input. For path inputs it opens the file and
// the caller must Close it; for streams Close is a no-op and the stream stays
// owned by the caller.
func (in Input) Open() (io.ReadCloser, error) {
	if in.path != "" {
		return os.Open(in.path)
	}
	return io.NopCloser(in.reader), nil
}
