package dataset

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		cell string
		want float64
	}{
		{"2.5", 2.5},
		{"1,5", 1},
		{"  -3.25e2kg", -325},
		{"+.5", 0.5},
		{"7.", 7},
		{"4e", 4},
		{"4e+", 4},
		{"1e-2x", 0.01},
		{"12 cm", 12},
		{"0.0", 0},
	}
	for _, c := range cases {
		got, err := ParseFloat(c.cell)
		if assert.NoError(t, err, "parsing %q", c.cell) {
			assert.Equal(t, c.want, got, "parsing %q", c.cell)
		}
	}

	v, err := ParseFloat("-Infinity")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
	v, err = ParseFloat("nan")
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	for _, cell := range []string{"", "abc", ".", "-", "+.e3", "e5", "n/a", "1e400"} {
		_, err := ParseFloat(cell)
		assert.Error(t, err, "parsing %q", cell)
	}
	_, err = ParseFloat("x1")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		cell string
		want int
	}{
		{"1", 1},
		{"1.0", 1},
		{"0.9", 0},
		{" -2", -2},
		{"+3 units", 3},
		{"10e3", 10},
	}
	for _, c := range cases {
		got, err := ParseInt(c.cell)
		if assert.NoError(t, err, "parsing %q", c.cell) {
			assert.Equal(t, c.want, got, "parsing %q", c.cell)
		}
	}
	for _, cell := range []string{"", "?", ".5", "-", "y", "99999999999999999999"} {
		_, err := ParseInt(cell)
		assert.Error(t, err, "parsing %q", cell)
	}
}

func TestIsNumericColumnReadsLeadingNumbers(t *testing.T) {
	ds := New([]string{"X", "Y"}, [][]string{{"1,5", "0.0"}, {"2,5", "1.0"}, {"3,5", "1.0"}})
	assert.True(t, ds.IsNumericColumn(0))
	assert.True(t, ds.IsNumericColumn(1))
}
