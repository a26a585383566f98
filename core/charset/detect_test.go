package charset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDetect(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("nombre,ciudad\nJosé,Logroño\n"))
	require.NoError(t, err)
	cp1252, err := charmap.Windows1252.NewEncoder().Bytes([]byte("name,price\n“Deluxe”,€5\n"))
	require.NoError(t, err)
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("a,b\n1,2\n"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		sample []byte
		want   string
	}{
		{"ASCII", []byte("name,age\nAna,30\n"), UTF8},
		{"UTF-8 Multibyte", []byte("nombre\nJosé Ñandú\n"), UTF8},
		{"UTF-8 BOM", append([]byte{0xEF, 0xBB, 0xBF}, "a,b\n"...), UTF8},
		{"UTF-16LE BOM", utf16le, UTF16LE},
		{"Latin-1", latin1, ISO88591},
		{"Windows-1252", cp1252, Windows1252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Detect(tt.sample)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name)
		})
	}
}

func TestDetect_Undetectable(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := Detect(nil)
		assert.ErrorIs(t, err, ErrUndetectable)
	})

	t.Run("Binary", func(t *testing.T) {
		_, err := Detect([]byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x08})
		assert.ErrorIs(t, err, ErrUndetectable)
	})
}

func TestDetect_RuneCutBySample(t *testing.T) {
	data := []byte("ab" + "é")
	// Cut inside the two-byte "é".
	g, err := Detect(data[:len(data)-1])
	require.NoError(t, err)
	assert.Equal(t, UTF8, g.Name)
}

func TestGuess_Decode(t *testing.T) {
	t.Run("Latin-1", func(t *testing.T) {
		raw, _ := charmap.ISO8859_1.NewEncoder().Bytes([]byte("José"))
		out, err := Guess{Name: ISO88591}.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, "José", out)
	})

	t.Run("UTF-8 Strips BOM", func(t *testing.T) {
		out, err := Guess{Name: UTF8}.Decode(append([]byte{0xEF, 0xBB, 0xBF}, "x"...))
		require.NoError(t, err)
		assert.Equal(t, "x", out)
	})

	t.Run("UTF-16 Strips BOM", func(t *testing.T) {
		raw, _ := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("hé"))
		out, err := Guess{Name: UTF16LE}.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, "hé", out)
	})

	t.Run("UTF-8 Guess Invalid Past Sample", func(t *testing.T) {
		data := append(bytes.Repeat([]byte("a"), 20), 0xE9, 'b')
		g, err := Detect(data[:20])
		require.NoError(t, err)
		require.Equal(t, UTF8, g.Name)

		_, err = g.Decode(data)
		assert.ErrorIs(t, err, ErrUndetectable)
		assert.Contains(t, err.Error(), "byte 20")
	})

	t.Run("Unknown Label", func(t *testing.T) {
		_, err := Guess{Name: "klingon"}.Decode([]byte("x"))
		assert.ErrorIs(t, err, ErrUndetectable)
	})
}
