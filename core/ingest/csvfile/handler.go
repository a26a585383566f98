package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"seed-manager/core/charset"
	"seed-manager/core/ingest"

	"go.uber.org/zap"
)

// Options configures the CSV handler.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// SampleSize is how many leading bytes feed encoding detection. Zero
	// means charset.DefaultSampleSize.
	SampleSize int
	// Logger receives the detected encoding at debug level. Nil disables logging.
	Logger *zap.Logger
}

// Handler loads delimited text with a header row.
type Handler struct {
	comma      rune
	sampleSize int
	logger     *zap.Logger
}

// NewHandler creates a CSV handler.
func NewHandler(opts Options) *Handler {
	h := &Handler{
		comma:      opts.Comma,
		sampleSize: opts.SampleSize,
		logger:     opts.Logger,
	}
	if h.comma == 0 {
		h.comma = ','
	}
	if h.sampleSize <= 0 {
		h.sampleSize = charset.DefaultSampleSize
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// MultipleCollections is false: a CSV file is a single table.
func (h *Handler) MultipleCollections() bool {
	return false
}

// Load decodes the input and parses it. Rows are zipped against the header
// positionally; every value is a string.
func (h *Handler) Load(in ingest.Input) (*ingest.Result, error) {
	text, err := h.readText(in)
	if err != nil {
		return nil, err
	}

	records, err := h.parse(in, text)
	if err != nil {
		return nil, err
	}
	return &ingest.Result{Records: records}, nil
}

// readText returns the whole input as UTF-8. Raw bytes go through encoding
// detection; a seekable stream is left at the offset it had on entry, also
// when detection or decoding fails.
func (h *Handler) readText(in ingest.Input) (text string, err error) {
	rc, err := in.Open()
	if err != nil {
		return "", h.fail(in, ingest.KindSourceUnreadable, 0, "cannot open source", err)
	}
	defer rc.Close()

	if in.IsText() {
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", h.fail(in, ingest.KindSourceUnreadable, 0, "cannot read source", err)
		}
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}

	seeker, seekable := in.Reader().(io.Seeker)
	var start int64
	if seekable {
		if start, err = seeker.Seek(0, io.SeekCurrent); err != nil {
			seekable = false
		}
	}

	data, err := io.ReadAll(rc)
	if seekable {
		defer func() {
			if _, serr := seeker.Seek(start, io.SeekStart); serr != nil && err == nil {
				text, err = "", h.fail(in, ingest.KindSourceUnreadable, 0, "cannot rewind source", serr)
			}
		}()
	}
	if err != nil {
		return "", h.fail(in, ingest.KindSourceUnreadable, 0, "cannot read source", err)
	}

	guess, err := charset.Detect(data[:min(len(data), h.sampleSize)])
	if err != nil {
		return "", h.fail(in, ingest.KindEncodingUndetectable, 0, "", err)
	}
	h.logger.Debug("Detected CSV encoding",
		zap.String("source", in.Name()),
		zap.String("encoding", guess.Name),
	)

	text, err = guess.Decode(data)
	if err != nil {
		return "", h.fail(in, ingest.KindEncodingUndetectable, 0, "decoding as "+guess.Name, err)
	}
	return text, nil
}

func (h *Handler) parse(in ingest.Input, text string) (ingest.RecordSet, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = h.comma
	r.FieldsPerRecord = -1

	records := ingest.RecordSet{}
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return records, nil
	}
	if err != nil {
		return nil, h.parseError(in, err)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, h.parseError(in, err)
		}

		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		records = append(records, ingest.NewRecord(header, values))
	}
	return records, nil
}

func (h *Handler) parseError(in ingest.Input, err error) *ingest.Error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return h.fail(in, ingest.KindMalformedCSV, pe.StartLine, "row could not be parsed", pe.Err)
	}
	return h.fail(in, ingest.KindMalformedCSV, 0, "row could not be parsed", err)
}

func (h *Handler) fail(in ingest.Input, kind ingest.Kind, line int, detail string, err error) *ingest.Error {
	return &ingest.Error{
		Kind:   kind,
		Format: ingest.FormatCSV,
		Source: in.Name(),
		Line:   line,
		Detail: detail,
		Err:    err,
	}
}
