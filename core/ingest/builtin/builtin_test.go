package builtin_test

import (
	"bytes"
	"strings"
	"testing"

	"seed-manager/core/ingest"
	"seed-manager/core/ingest/builtin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestNewRegistry(t *testing.T) {
	reg := builtin.NewRegistry(builtin.Config{}, zap.NewNop())
	assert.Equal(t, []ingest.Format{ingest.FormatCSV, ingest.FormatJSON, ingest.FormatXLSX}, reg.Formats())

	h, err := reg.Resolve(ingest.FormatJSON)
	require.NoError(t, err)
	assert.True(t, h.MultipleCollections())

	_, err = reg.Resolve("yaml")
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
}

func TestConfig_Comma(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"", ','},
		{";", ';'},
		{"\t", '\t'},
		{"|x", '|'},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.Config{CSVDelimiter: tt.in}.Comma())
		})
	}
}

// Every format yields N records exposing the header keys in header order.
func TestNewLoader_SameShapeAcrossFormats(t *testing.T) {
	loader := builtin.NewLoader(builtin.Config{CSVDelimiter: ",", CSVSampleSize: 10000}, nil)

	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range map[string]any{"A1": "name", "B1": "age", "A2": "Ana", "B2": "30", "A3": "Luis", "B3": "25"} {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	xlsx, err := f.WriteToBuffer()
	require.NoError(t, err)

	inputs := map[ingest.Format]ingest.Input{
		ingest.FormatCSV:  ingest.FromReader(strings.NewReader("name,age\nAna,30\nLuis,25\n")),
		ingest.FormatJSON: ingest.FromReader(strings.NewReader(`[{"name":"Ana","age":"30"},{"name":"Luis","age":"25"}]`)),
		ingest.FormatXLSX: ingest.FromReader(bytes.NewReader(xlsx.Bytes())),
	}

	for format, in := range inputs {
		t.Run(format.String(), func(t *testing.T) {
			res, err := loader.Load(in, format)
			require.NoError(t, err)

			rs, err := res.RecordSet()
			require.NoError(t, err)
			assert.Equal(t, []map[string]any{
				{"name": "Ana", "age": "30"},
				{"name": "Luis", "age": "25"},
			}, rs.Maps())
			for _, r := range rs {
				assert.Equal(t, []string{"name", "age"}, r.Keys())
			}
		})
	}
}

func TestNewLoader_MissingInput(t *testing.T) {
	loader := builtin.NewLoader(builtin.Config{}, nil)
	_, err := loader.Load(ingest.Input{}, ingest.FormatJSON)
	assert.ErrorIs(t, err, ingest.ErrMissingInput)
}
