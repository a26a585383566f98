package ingest_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"seed-manager/core/ingest"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := &ingest.Error{Kind: ingest.KindMalformedCSV, Source: "a.csv", Line: 4}
	wrapped := fmt.Errorf("seeding people: %w", err)

	assert.ErrorIs(t, wrapped, ingest.ErrMalformedCSV)
	assert.NotErrorIs(t, wrapped, ingest.ErrMalformedJSON)
	assert.Equal(t, ingest.KindMalformedCSV, ingest.KindOf(wrapped))
	assert.Equal(t, ingest.KindUnknown, ingest.KindOf(errors.New("plain")))
}

func TestError_Unwrap(t *testing.T) {
	err := &ingest.Error{Kind: ingest.KindSourceUnreadable, Err: fs.ErrNotExist}
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ingest.ErrSourceUnreadable)
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ingest.Error
		want string
	}{
		{
			name: "Full",
			err: &ingest.Error{
				Kind: ingest.KindMalformedCSV, Format: ingest.FormatCSV,
				Source: "a.csv", Line: 3, Detail: "bad row", Err: errors.New("quote"),
			},
			want: "malformed_csv [csv] a.csv line 3: bad row: quote",
		},
		{
			name: "Detail Only",
			err:  &ingest.Error{Kind: ingest.KindMissingInput, Detail: "no input provided"},
			want: "missing_input: no input provided",
		},
		{
			name: "Cause Only",
			err:  &ingest.Error{Kind: ingest.KindSpreadsheetUnreadable, Source: "<stream>", Err: errors.New("zip: not a valid zip file")},
			want: "spreadsheet_unreadable <stream>: zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKind_Class(t *testing.T) {
	tests := []struct {
		kind ingest.Kind
		want ingest.Class
	}{
		{ingest.KindMissingInput, ingest.ClassMissing},
		{ingest.KindUnsupportedFormat, ingest.ClassUnsupported},
		{ingest.KindMalformedJSON, ingest.ClassMalformed},
		{ingest.KindSourceUnreadable, ingest.ClassUnreadable},
		{ingest.KindMalformedCSV, ingest.ClassMalformed},
		{ingest.KindEncodingUndetectable, ingest.ClassMalformed},
		{ingest.KindSpreadsheetUnreadable, ingest.ClassUnreadable},
		{ingest.KindUnsupportedConstruct, ingest.ClassUnsupported},
		{ingest.KindUnknown, ingest.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Class())
		})
	}
}
