package jsonfile

import (
	stdjson "encoding/json"
	"fmt"
	"io"
)

// memberOrder returns the member names, in document order, of the root object
// or of each object element of the root array. The document must already be
// known to be valid and record shaped.
func memberOrder(r io.Reader) ([][]string, error) {
	dec := stdjson.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok {
	case stdjson.Delim('{'):
		keys, err := objectKeys(dec)
		if err != nil {
			return nil, err
		}
		return [][]string{keys}, nil
	case stdjson.Delim('['):
		var out [][]string
		for dec.More() {
			if tok, err = dec.Token(); err != nil {
				return nil, err
			}
			if tok != stdjson.Delim('{') {
				return nil, fmt.Errorf("array element is %v, not an object", tok)
			}
			keys, err := objectKeys(dec)
			if err != nil {
				return nil, err
			}
			out = append(out, keys)
		}
		return out, nil
	}
	return nil, fmt.Errorf("root token %v is not an object or array", tok)
}

// objectKeys reads an object whose opening brace was already consumed and
// returns its member names. Values are skipped.
func objectKeys(dec *stdjson.Decoder) ([]string, error) {
	keys := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v", tok)
		}
		keys = append(keys, key)

		var skip stdjson.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return keys, nil
}
