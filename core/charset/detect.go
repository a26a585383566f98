package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultSampleSize is how many leading bytes are inspected by default.
const DefaultSampleSize = 10000

// Labels returned by Detect.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	ISO88591    = "ISO-8859-1"
	Windows1252 = "windows-1252"
)

// ErrUndetectable is returned when no usable charset guess exists, or when
// the guessed charset does not decode the full payload.
var ErrUndetectable = errors.New("encoding undetectable")

// Guess is a best-effort charset label. It carries no confidence score.
type Guess struct {
	Name string
}

// Detect infers the text encoding of sample.
//
// Order: byte order mark, binary content (NUL bytes), UTF-8 validity, then
// single-byte Latin. A sample cut in the middle of a multi-byte rune still
// detects as UTF-8.
func Detect(sample []byte) (Guess, error) {
	if len(sample) == 0 {
		return Guess{}, fmt.Errorf("%w: empty sample", ErrUndetectable)
	}

	// DetermineEncoding is only certain when it found a BOM.
	if _, name, certain := htmlcharset.DetermineEncoding(sample, ""); certain {
		if label, ok := bomLabels[name]; ok {
			return Guess{Name: label}, nil
		}
	}

	if bytes.IndexByte(sample, 0x00) >= 0 {
		return Guess{}, fmt.Errorf("%w: sample contains NUL bytes", ErrUndetectable)
	}

	if utf8.Valid(trimPartialRune(sample)) {
		return Guess{Name: UTF8}, nil
	}

	// C1 range is control characters in Latin-1 but printable in windows-1252.
	for _, b := range sample {
		if b >= 0x80 && b <= 0x9F {
			return Guess{Name: Windows1252}, nil
		}
	}
	return Guess{Name: ISO88591}, nil
}

// bomLabels maps the WHATWG names returned for BOMs to our labels.
var bomLabels = map[string]string{
	"utf-8":    UTF8,
	"utf-16le": UTF16LE,
	"utf-16be": UTF16BE,
}

// trimPartialRune drops an incomplete multi-byte sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		c := b[i]
		if c < utf8.RuneSelf {
			return b
		}
		if utf8.RuneStart(c) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			return b
		}
	}
	return b
}

// Lookup returns the encoding for a charset label. Labels produced by Detect
// map to exact decoders; anything else goes through the WHATWG index, which
// folds ISO-8859-1 into windows-1252.
func Lookup(label string) (encoding.Encoding, error) {
	switch label {
	case ISO88591:
		return charmap.ISO8859_1, nil
	case Windows1252:
		return charmap.Windows1252, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	}
	return htmlindex.Get(label)
}

// Decode converts data from the guessed charset to a UTF-8 string, dropping a
// leading byte order mark.
//
// A UTF-8 guess is validated against the whole payload: bytes beyond the
// detection sample that are not valid UTF-8 fail with ErrUndetectable rather
// than being replaced.
func (g Guess) Decode(data []byte) (string, error) {
	if g.Name == UTF8 {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrUndetectable, invalidOffset(data))
		}
		return string(data), nil
	}

	enc, err := Lookup(g.Name)
	if err != nil {
		return "", fmt.Errorf("%w: unknown charset %q", ErrUndetectable, g.Name)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: decoding as %s: %v", ErrUndetectable, g.Name, err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// invalidOffset returns the offset of the first invalid UTF-8 byte.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
