package xlsxfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seed-manager/core/ingest"
	"seed-manager/core/ingest/xlsxfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds a workbook whose default sheet holds cells.
func workbook(t *testing.T, cells map[string]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	return f
}

func loadBuffer(t *testing.T, f *excelize.File) (*ingest.Result, error) {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return xlsxfile.NewHandler(xlsxfile.Options{}).Load(ingest.FromReader(bytes.NewReader(buf.Bytes())))
}

func TestHandler_Load_Typed(t *testing.T) {
	f := workbook(t, map[string]any{
		"A1": "name", "B1": "age", "C1": "score", "D1": "active",
		"A2": "Ana", "B2": 30, "C2": 9.5, "D2": true,
		"A3": "Luis", "B3": 25, "C3": 7.0, "D3": false,
	})

	res, err := loadBuffer(t, f)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	for _, r := range res.Records {
		assert.Equal(t, []string{"name", "age", "score", "active"}, r.Keys())
	}
	assert.Equal(t, []map[string]any{
		{"name": "Ana", "age": int64(30), "score": 9.5, "active": true},
		{"name": "Luis", "age": int64(25), "score": int64(7), "active": false},
	}, res.Records.Maps())
}

func TestHandler_Load_Shape(t *testing.T) {
	t.Run("Empty Cells Are Nil", func(t *testing.T) {
		f := workbook(t, map[string]any{
			"A1": "a", "B1": "b", "C1": "c",
			"A2": "x", "C2": "z",
			"A3": "only",
		})

		res, err := loadBuffer(t, f)
		require.NoError(t, err)
		require.Len(t, res.Records, 2)

		assert.Equal(t, map[string]any{"a": "x", "b": nil, "c": "z"}, res.Records[0].Map())
		assert.Equal(t, []string{"a", "b", "c"}, res.Records[1].Keys())
		assert.Equal(t, map[string]any{"a": "only", "b": nil, "c": nil}, res.Records[1].Map())
	})

	t.Run("Blank Row Kept", func(t *testing.T) {
		f := workbook(t, map[string]any{"A1": "id", "A2": 1, "A4": 3})

		res, err := loadBuffer(t, f)
		require.NoError(t, err)
		require.Len(t, res.Records, 3)
		assert.Equal(t, map[string]any{"id": nil}, res.Records[1].Map())
	})

	t.Run("Cells Beyond Header Dropped", func(t *testing.T) {
		f := workbook(t, map[string]any{"A1": "id", "A2": 1, "B2": "extra"})

		res, err := loadBuffer(t, f)
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assert.Equal(t, []string{"id"}, res.Records[0].Keys())
	})

	t.Run("Header Only", func(t *testing.T) {
		f := workbook(t, map[string]any{"A1": "name", "B1": "age"})

		res, err := loadBuffer(t, f)
		require.NoError(t, err)
		assert.NotNil(t, res.Records)
		assert.Empty(t, res.Records)
	})

	t.Run("Empty Sheet", func(t *testing.T) {
		res, err := loadBuffer(t, workbook(t, nil))
		require.NoError(t, err)
		assert.Empty(t, res.Records)
	})
}

func TestHandler_Load_ActiveSheet(t *testing.T) {
	f := workbook(t, map[string]any{"A1": "first", "A2": "ignored"})
	idx, err := f.NewSheet("People")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("People", "A1", "name"))
	require.NoError(t, f.SetCellValue("People", "A2", "Ana"))
	f.SetActiveSheet(idx)

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, f.SaveAs(path))

	res, err := xlsxfile.NewHandler(xlsxfile.Options{}).Load(ingest.FromPath(path))
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"name": "Ana"}}, res.Records.Maps())
}

func TestHandler_Load_Unreadable(t *testing.T) {
	dir := t.TempDir()
	notZip := filepath.Join(dir, "fake.xlsx")
	require.NoError(t, os.WriteFile(notZip, []byte("name,age\nAna,30\n"), 0o644))

	tests := []struct {
		name string
		in   ingest.Input
	}{
		{"Corrupt Stream", ingest.FromReader(strings.NewReader("PK\x03\x04 truncated"))},
		{"CSV Renamed", ingest.FromPath(notZip)},
		{"Missing File", ingest.FromPath(filepath.Join(dir, "missing.xlsx"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := xlsxfile.NewHandler(xlsxfile.Options{}).Load(tt.in)
			assert.Nil(t, res)
			require.ErrorIs(t, err, ingest.ErrSpreadsheetUnreadable)

			var ie *ingest.Error
			require.ErrorAs(t, err, &ie)
			assert.NotNil(t, ie.Err)
			assert.Equal(t, ingest.FormatXLSX, ie.Format)
		})
	}
}

func TestHandler_MultipleCollections(t *testing.T) {
	assert.False(t, xlsxfile.NewHandler(xlsxfile.Options{}).MultipleCollections())
}
