package dataset

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractParsePolicies(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ds := New([]string{"X", "Z", "Y"}, [][]string{
		{"1", "10", "0"},
		{"abc", "20", "1"},
		{"3", "30", "z"},
		{"4", "", "1"},
	})
	ex := NewExtractor(ds, 2, []int{0, 1}, logger)
	s := ex.Extract(ds.RowIndices())

	require.Equal(t, 3, s.Count())
	assert.Equal(t, [][]float64{{1, 0, 4}, {10, 20, 0}}, s.AttributeValues)
	assert.Equal(t, []int{0, 1, 1}, s.TargetValues)
	assert.Equal(t, []int{0, 1, 3}, s.RowIndices)
	assert.Equal(t, []int{2}, s.DroppedRows)
	assert.Equal(t, 2, s.DefaultedCells)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level)
	}
	assert.Equal(t, "abc", entries[0].Data["cell"])
	assert.Equal(t, "X", entries[0].Data["column"])
	assert.Equal(t, 2, entries[1].Data["row"])
}

func TestExtractKeepsRequestedOrder(t *testing.T) {
	ds := New([]string{"X", "Y"}, [][]string{{"1", "0"}, {"2", "1"}, {"3", "0"}})
	s := NewExtractor(ds, 1, []int{0}, nil).Extract([]int{2, 0})
	assert.Equal(t, []int{2, 0}, s.RowIndices)
	assert.Equal(t, []float64{3, 1}, s.AttributeValues[0])
	assert.Equal(t, []int{0, 0}, s.TargetValues)
}

func TestExtractEverySliceHasTheSameLength(t *testing.T) {
	ds := New([]string{"A", "B", "Y"}, [][]string{{"1", "2", "x"}, {"", "", ""}, {"1", "2", "3"}})
	s := NewExtractor(ds, 2, []int{0, 1}, nil).Extract(ds.RowIndices())
	for _, values := range s.AttributeValues {
		assert.Len(t, values, s.Count())
	}
	assert.Len(t, s.RowIndices, s.Count())
	assert.Equal(t, 1, s.Count())
}

func TestParsePolicies(t *testing.T) {
	v, keep, recovered := AttributePolicy.ParseAttribute("2.5")
	assert.Equal(t, 2.5, v)
	assert.True(t, keep)
	assert.False(t, recovered)

	v, keep, recovered = AttributePolicy.ParseAttribute("n/a")
	assert.Equal(t, 0.0, v)
	assert.True(t, keep)
	assert.True(t, recovered)

	y, keep, recovered := TargetPolicy.ParseTarget("1.0")
	assert.Equal(t, 1, y, "the fraction of a target is ignored")
	assert.True(t, keep)
	assert.False(t, recovered)

	y, keep, recovered = TargetPolicy.ParseTarget(".5")
	assert.Equal(t, 0, y)
	assert.False(t, keep, "targets must start with an integer")
	assert.True(t, recovered)

	v, keep, recovered = AttributePolicy.ParseAttribute("1,5")
	assert.Equal(t, 1.0, v, "decimal commas end the number")
	assert.True(t, keep)
	assert.False(t, recovered)

	y, keep, _ = ParsePolicy{OnFailure: UseDefault, Default: 7}.ParseTarget("?")
	assert.Equal(t, 7, y)
	assert.True(t, keep)
}
