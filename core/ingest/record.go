package ingest

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Record is one normalized row or object: an ordered mapping from field name
// to a scalar or nil value. Records are immutable once built.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord zips values positionally against keys.
//
// A values slice shorter than keys leaves the trailing keys absent; extra
// values are dropped. A repeated key keeps its first position and takes the
// last value given for it.
func NewRecord(keys []string, values []any) Record {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}

	r := Record{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
	for i := 0; i < n; i++ {
		k := keys[i]
		if _, seen := r.values[k]; !seen {
			r.keys = append(r.keys, k)
		}
		r.values[k] = values[i]
	}
	return r
}

// Keys returns the field names in record order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the value stored under key and whether the key is present.
// A present key may hold a nil value.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Map returns a copy of the record as a plain map. Field order is lost.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the record as a JSON object with keys in record order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordSet is an ordered sequence of records; order is source row order.
type RecordSet []Record

// Maps converts every record to a plain map, e.g. for bulk inserts.
func (rs RecordSet) Maps() []map[string]any {
	out := make([]map[string]any, len(rs))
	for i, r := range rs {
		out[i] = r.Map()
	}
	return out
}

// Keys returns the union of field names across the set, in first-seen order.
func (rs RecordSet) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, r := range rs {
		for _, k := range r.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
