package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"seed-manager/core/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Run("Missing Input Before Any Handler", func(t *testing.T) {
		h := &stubHandler{}
		reg := ingest.NewRegistry()
		reg.Register(ingest.FormatJSON, h)

		res, err := ingest.NewLoader(reg).Load(ingest.Input{}, ingest.FormatJSON)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ingest.ErrMissingInput)
		assert.Equal(t, 0, h.calls)
	})

	t.Run("Missing Input Wins Over Unsupported Format", func(t *testing.T) {
		_, err := ingest.NewLoader(ingest.NewRegistry()).Load(ingest.Input{}, "yaml")
		assert.ErrorIs(t, err, ingest.ErrMissingInput)
	})

	t.Run("Unsupported Format Is Surfaced", func(t *testing.T) {
		reg := ingest.NewRegistry()
		reg.Register(ingest.FormatCSV, &stubHandler{})

		res, err := ingest.NewLoader(reg).Load(ingest.FromReader(strings.NewReader("a")), "yaml")
		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, ingest.KindUnsupportedFormat, ingest.KindOf(err))
	})

	t.Run("Result Passed Through Unchanged", func(t *testing.T) {
		want := &ingest.Result{Records: ingest.RecordSet{
			ingest.NewRecord([]string{"name"}, []any{"Ana"}),
		}}
		h := &stubHandler{result: want}
		reg := ingest.NewRegistry()
		reg.Register(ingest.FormatCSV, h)

		in := ingest.FromPath("people.csv")
		got, err := ingest.NewLoader(reg).Load(in, ingest.FormatCSV)
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, 1, h.calls)
		assert.Equal(t, "people.csv", h.lastIn.Path())
	})

	t.Run("Handler Error Passed Through", func(t *testing.T) {
		cause := &ingest.Error{Kind: ingest.KindMalformedCSV, Line: 3}
		reg := ingest.NewRegistry()
		reg.Register(ingest.FormatCSV, &stubHandler{err: cause})

		_, err := ingest.NewLoader(reg).Load(ingest.FromPath("x.csv"), ingest.FormatCSV)
		assert.True(t, errors.Is(err, cause))
		assert.Same(t, cause, err)
	})
}

func TestInput(t *testing.T) {
	assert.True(t, ingest.Input{}.IsZero())
	assert.False(t, ingest.FromPath("a.json").IsZero())
	assert.False(t, ingest.FromReader(strings.NewReader("")).IsZero())

	assert.Equal(t, "a.json", ingest.FromPath("a.json").Name())
	assert.Equal(t, "<stream>", ingest.FromReader(strings.NewReader("")).Name())
	assert.True(t, ingest.FromText(strings.NewReader("")).IsText())
	assert.False(t, ingest.FromReader(strings.NewReader("")).IsText())
}

func TestResult_RecordSet(t *testing.T) {
	t.Run("Tabular", func(t *testing.T) {
		res := &ingest.Result{Records: ingest.RecordSet{}}
		rs, err := res.RecordSet()
		require.NoError(t, err)
		assert.Empty(t, rs)
	})

	t.Run("Structured Without Record Shape", func(t *testing.T) {
		res := &ingest.Result{Raw: float64(42)}
		_, err := res.RecordSet()
		assert.ErrorIs(t, err, ingest.ErrUnsupportedConstruct)
	})
}
