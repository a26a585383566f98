package xlsxfile

import (
	"math"
	"strconv"
	"strings"

	"seed-manager/core/ingest"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Options configures the XLSX handler.
type Options struct {
	// Logger receives the chosen sheet at debug level. Nil disables logging.
	Logger *zap.Logger
}

// Handler loads the active sheet of an XLSX workbook.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates an XLSX handler.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// MultipleCollections is false: only one sheet is ever read.
func (h *Handler) MultipleCollections() bool {
	return false
}

// Load reads the active sheet. The first row is the header; cell values keep
// their spreadsheet type.
func (h *Handler) Load(in ingest.Input) (*ingest.Result, error) {
	f, err := open(in)
	if err != nil {
		return nil, h.fail(in, "cannot open workbook", err)
	}
	defer f.Close()

	sheet := activeSheet(f)
	h.logger.Debug("Reading XLSX sheet", zap.String("source", in.Name()), zap.String("sheet", sheet))

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, h.fail(in, "cannot read sheet "+sheet, err)
	}

	records := ingest.RecordSet{}
	if len(rows) == 0 {
		return &ingest.Result{Records: records}, nil
	}

	header := rows[0]
	for i, row := range rows[1:] {
		// rows[0] is sheet row 1
		rowNum := i + 2
		values := make([]any, len(header))
		for col := 0; col < len(header) && col < len(row); col++ {
			if values[col], err = cellValue(f, sheet, col+1, rowNum, row[col]); err != nil {
				return nil, h.fail(in, "cannot read cell", err)
			}
		}
		records = append(records, ingest.NewRecord(header, values))
	}
	return &ingest.Result{Records: records}, nil
}

func (h *Handler) fail(in ingest.Input, detail string, err error) *ingest.Error {
	return &ingest.Error{
		Kind:   ingest.KindSpreadsheetUnreadable,
		Format: ingest.FormatXLSX,
		Source: in.Name(),
		Detail: detail,
		Err:    err,
	}
}

func open(in ingest.Input) (*excelize.File, error) {
	if p := in.Path(); p != "" {
		return excelize.OpenFile(p)
	}
	return excelize.OpenReader(in.Reader())
}

// activeSheet returns the active sheet name, falling back to the first sheet.
func activeSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if sheets := f.GetSheetList(); len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}

// cellValue converts the raw text of a cell to a typed value.
//
// Booleans become bool, numbers become int64 when integral and float64
// otherwise, empty cells become nil. Dates are stored as numbers by the
// format and come back as serial day numbers. Everything else stays a string.
func cellValue(f *excelize.File, sheet string, col, row int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, ok := number(raw); ok {
			return n, nil
		}
	}
	return raw, nil
}

// maxExactInt is the largest integer a float64 holds without rounding.
const maxExactInt = 1 << 53

func number(raw string) (any, bool) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	if v == math.Trunc(v) && math.Abs(v) <= maxExactInt {
		return int64(v), true
	}
	return v, true
}
