package utils_test

import (
	"testing"

	"seed-manager/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "Ana", "Ana"},
		{"Bytes", []byte("raw"), "raw"},
		{"Bool", true, "true"},
		{"Int64", int64(30), "30"},
		{"Integral Float", float64(1234567), "1234567"},
		{"Fraction", 9.5, "9.5"},
		{"Huge Float", 1e20, "1e+20"},
		{"Object", map[string]any{"a": float64(1)}, `{"a":1}`},
		{"Array", []any{"x", nil}, `["x",null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.in))
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 7, 7},
		{"Int64", int64(30), 30},
		{"Float", 2.9, 2},
		{"String", " 42 ", 42},
		{"Bad String", "abc", 0},
		{"Bool", true, 1},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{int64(1), true},
		{float64(0), false},
		{"TRUE", true},
		{"yes", true},
		{"no", false},
		{[]byte("1"), true},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.ToBool(tt.in), "%v", tt.in)
	}
}
