package jsonfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"seed-manager/core/ingest"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Options configures the JSON handler.
type Options struct {
	// Logger receives the advisory extension warning. Nil disables logging.
	Logger *zap.Logger
}

// Handler loads JSON documents.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a JSON handler.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// MultipleCollections is true: one JSON document may hold several collections.
func (h *Handler) MultipleCollections() bool {
	return true
}

// Load parses the whole document. Raw holds the parsed value as-is; Records
// is set only when the root is an object or an array of objects.
func (h *Handler) Load(in ingest.Input) (*ingest.Result, error) {
	if p := in.Path(); p != "" && !strings.EqualFold(filepath.Ext(p), ".json") {
		h.logger.Warn("JSON input does not have a .json extension", zap.String("path", p))
	}

	rc, err := in.Open()
	if err != nil {
		return nil, h.fail(in, ingest.KindSourceUnreadable, "cannot open source", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, h.fail(in, ingest.KindSourceUnreadable, "cannot read source", err)
	}

	raw, err := decode(data)
	if err != nil {
		return nil, h.fail(in, ingest.KindMalformedJSON, syntaxDetail(err), err)
	}

	records, err := toRecords(data, raw)
	if err != nil {
		return nil, h.fail(in, ingest.KindMalformedJSON, "cannot read member order", err)
	}
	return &ingest.Result{Records: records, Raw: raw}, nil
}

func (h *Handler) fail(in ingest.Input, kind ingest.Kind, detail string, err error) *ingest.Error {
	return &ingest.Error{
		Kind:   kind,
		Format: ingest.FormatJSON,
		Source: in.Name(),
		Detail: detail,
		Err:    err,
	}
}

// decode parses exactly one document. Integral numbers become int64, others
// float64.
func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}
		return nil, err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return numbers(raw), nil
}

var (
	errEmptyDocument = errors.New("empty document")
	errTrailingData  = errors.New("unexpected data after document")
)

// numbers replaces every json.Number in v.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, el := range t {
			t[k] = numbers(el)
		}
		return t
	case []any:
		for i, el := range t {
			t[i] = numbers(el)
		}
		return t
	}
	return v
}

func syntaxDetail(err error) string {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Sprintf("syntax error at offset %d", se.Offset)
	}
	if errors.Is(err, errEmptyDocument) || errors.Is(err, errTrailingData) {
		return err.Error()
	}
	return "invalid document"
}

// toRecords shapes raw into records. Objects lose member order once decoded
// into a map, so the order is read from data.
func toRecords(data []byte, raw any) (ingest.RecordSet, error) {
	var objects []map[string]any
	switch v := raw.(type) {
	case map[string]any:
		objects = []map[string]any{v}
	case []any:
		objects = make([]map[string]any, 0, len(v))
		for _, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, nil
			}
			objects = append(objects, obj)
		}
	default:
		return nil, nil
	}

	order, err := memberOrder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(order) != len(objects) {
		return nil, fmt.Errorf("found %d objects, expected %d", len(order), len(objects))
	}

	records := make(ingest.RecordSet, 0, len(objects))
	for i, obj := range objects {
		keys := order[i]
		values := make([]any, len(keys))
		for j, k := range keys {
			values[j] = obj[k]
		}
		records = append(records, ingest.NewRecord(keys, values))
	}
	return records, nil
}
