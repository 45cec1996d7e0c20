package c45

import (
	"sort"
	"testing"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subsetOf extracts every row of ds with its last column as target and the
// rest as attributes.
func subsetOf(t *testing.T, ds *dataset.Dataset) (*dataset.Subset, []*feature.ContinuousFeature) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	target := ds.ColumnCount() - 1
	var columns []int
	var features []*feature.ContinuousFeature
	for c := 0; c < target; c++ {
		columns = append(columns, c)
		features = append(features, feature.NewContinuousFeature(ds.ColumnName(c), c))
	}
	return dataset.NewExtractor(ds, target, columns, logger).Extract(ds.RowIndices()), features
}

func TestFindBestSplitPerfectSplit(t *testing.T) {
	ds := dataset.New([]string{"X", "Y"}, [][]string{{"1", "0"}, {"2", "0"}, {"3", "1"}, {"4", "1"}})
	s, features := subsetOf(t, ds)

	best := FindBestSplit(s, features, 0, nil)
	require.True(t, best.Usable())
	assert.Equal(t, features[0], best.Feature)
	assert.Equal(t, 0, best.Attribute)
	assert.Equal(t, 2.5, best.Threshold)
	assert.Equal(t, 1.0, best.InformationGain)
	assert.Equal(t, 1.0, best.SplitInformation)
	assert.Equal(t, 1.0, best.GainRatio)
	assert.Equal(t, 0.0, best.LeftEntropy)
	assert.Equal(t, 0.0, best.RightEntropy)
	assert.Equal(t, []int{0, 1}, best.LeftRows)
	assert.Equal(t, []int{2, 3}, best.RightRows)
	assert.Equal(t, []int{0, 0}, best.LeftTargets)
	assert.Equal(t, []int{1, 1}, best.RightTargets)
}

func TestFindBestSplitPrefersHigherGainRatio(t *testing.T) {
	ds := dataset.New([]string{"A", "B", "Y"}, [][]string{
		{"1", "5", "0"},
		{"2", "1", "0"},
		{"3", "4", "1"},
		{"4", "2", "1"},
	})
	s, features := subsetOf(t, ds)
	best := FindBestSplit(s, features, 0, nil)
	assert.Equal(t, "A", best.Feature.Name())
	assert.Equal(t, 2.5, best.Threshold)

	ds = dataset.New([]string{"A", "B", "Y"}, [][]string{
		{"5", "1", "0"},
		{"1", "2", "0"},
		{"4", "3", "1"},
		{"2", "4", "1"},
	})
	s, features = subsetOf(t, ds)
	best = FindBestSplit(s, features, 0, nil)
	assert.Equal(t, "B", best.Feature.Name())
	assert.Equal(t, 1, best.Attribute)
	assert.Equal(t, 2.5, best.Threshold)
}

func TestFindBestSplitTiesKeepTheFirstCandidate(t *testing.T) {
	ds := dataset.New([]string{"A", "B", "Y"}, [][]string{
		{"1", "1", "0"},
		{"2", "2", "1"},
		{"3", "3", "0"},
	})
	s, features := subsetOf(t, ds)
	best := FindBestSplit(s, features, 0, nil)
	require.True(t, best.Usable())
	assert.Equal(t, "A", best.Feature.Name(), "first attribute in column order")
	assert.Equal(t, 1.5, best.Threshold, "lowest threshold within the attribute")
}

func TestFindBestSplitWithoutCandidates(t *testing.T) {
	ds := dataset.New([]string{"A", "B", "Y"}, [][]string{
		{"7", "x", "0"},
		{"7", "y", "1"},
	})
	s, features := subsetOf(t, ds)
	best := FindBestSplit(s, features, 0, nil)
	assert.False(t, best.Usable())
	assert.Nil(t, best.Feature)
	assert.Equal(t, -1, best.Attribute)
	assert.Equal(t, -1.0, best.GainRatio)
}

func TestFindBestSplitWithoutGain(t *testing.T) {
	ds := dataset.New([]string{"X", "Y"}, [][]string{{"1", "0"}, {"1", "1"}, {"2", "0"}, {"2", "1"}})
	s, features := subsetOf(t, ds)
	best := FindBestSplit(s, features, 0, nil)
	assert.Equal(t, "X", best.Feature.Name())
	assert.Equal(t, 0.0, best.GainRatio)
	assert.False(t, best.Usable())
}

func TestFindBestSplitPartitionsEveryRow(t *testing.T) {
	ds := dataset.New([]string{"A", "B", "Y"}, [][]string{
		{"0.5", "3", "0"},
		{"1.5", "n/a", "1"},
		{"0.5", "1", "2"},
		{"2.5", "2", "1"},
		{"3.0", "3", "0"},
		{"1.5", "1", "2"},
		{"4.0", "2", "1"},
	})
	s, features := subsetOf(t, ds)
	best := FindBestSplit(s, features, 0, nil)
	require.True(t, best.Usable())
	assert.NotEmpty(t, best.LeftRows)
	assert.NotEmpty(t, best.RightRows)
	rows := append(append([]int(nil), best.LeftRows...), best.RightRows...)
	sort.Ints(rows)
	assert.Equal(t, s.RowIndices, rows)
	assert.Len(t, best.LeftTargets, len(best.LeftRows))
	assert.Len(t, best.RightTargets, len(best.RightRows))
}

func TestCandidateThresholds(t *testing.T) {
	assert.Equal(t, []float64{1.5, 2.5, 6.5}, candidateThresholds([]float64{3, 1, 2, 2, 10, 1}))
	assert.Nil(t, candidateThresholds([]float64{4, 4, 4}))
	assert.Nil(t, candidateThresholds(nil))

	values := []float64{3, 1, 2}
	candidateThresholds(values)
	assert.Equal(t, []float64{3, 1, 2}, values, "input must be left untouched")
}
