package c45

import (
	"sort"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
)

// noSplit is the gain ratio of the best candidate before any is evaluated.
const noSplit = -1.0

/*
Candidate represents a binary split of a subset on a feature threshold,
together with its metrics and the resulting partition. LeftRows and RightRows
hold dataset row indices, LeftTargets and RightTargets the class labels of
those rows, in subset order.
*/
type Candidate struct {
	Feature          *feature.ContinuousFeature
	Attribute        int
	Threshold        float64
	InformationGain  float64
	SplitInformation float64
	GainRatio        float64
	LeftEntropy      float64
	RightEntropy     float64
	LeftRows         []int
	RightRows        []int
	LeftTargets      []int
	RightTargets     []int
}

// Usable returns whether the candidate improves purity, that is, whether
// its gain ratio is positive.
func (c *Candidate) Usable() bool {
	return c != nil && c.GainRatio > 0
}

/*
FindBestSplit takes a subset, the features of its attribute columns (in the
same order as subset.AttributeValues), the depth of the node being grown and
a tracer, and returns the candidate with the highest gain ratio.

For every feature the distinct values of the subset are sorted and the
midpoints between consecutive ones are tried as thresholds, skipping those
leaving a side empty. Features with fewer than 2 distinct values are skipped.
Only a strictly greater gain ratio replaces the best candidate, so ties keep
the first feature in column order and, within it, the lowest threshold.

When nothing was evaluated the returned candidate has a nil Feature and a
gain ratio of -1. Either way, callers should check Usable.
*/
func FindBestSplit(s *dataset.Subset, features []*feature.ContinuousFeature, depth int, tr Tracer) *Candidate {
	if tr == nil {
		tr = NopTracer{}
	}
	parentEntropy := Entropy(s.TargetValues)
	tr.SplitSearchStarted(depth, s.Count(), parentEntropy, ClassDistribution(s.TargetValues))
	best := &Candidate{Attribute: -1, GainRatio: noSplit}
	for a, f := range features {
		tr.FeatureStarted(depth, f)
		values := s.AttributeValues[a]
		thresholds := candidateThresholds(values)
		if len(thresholds) == 0 {
			tr.NotEnoughValues(depth, f)
			continue
		}
		for _, t := range thresholds {
			c := partition(s, a, t)
			if len(c.LeftTargets) == 0 || len(c.RightTargets) == 0 {
				continue
			}
			c.Feature = f
			c.LeftEntropy = Entropy(c.LeftTargets)
			c.RightEntropy = Entropy(c.RightTargets)
			c.InformationGain = InformationGain(parentEntropy, c.LeftEntropy, c.RightEntropy, len(c.LeftTargets), len(c.RightTargets))
			c.SplitInformation = SplitInformation(len(c.LeftTargets), len(c.RightTargets))
			c.GainRatio = GainRatio(c.InformationGain, c.SplitInformation)
			better := c.GainRatio > best.GainRatio
			tr.ThresholdEvaluated(depth, c, better)
			if better {
				best = c
			}
		}
	}
	tr.SplitSearchFinished(depth, best)
	return best
}

/*
candidateThresholds returns the midpoints between consecutive distinct values
of the given slice, in ascending order.
*/
func candidateThresholds(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	distinct := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != distinct[len(distinct)-1] {
			distinct = append(distinct, v)
		}
	}
	if len(distinct) < 2 {
		return nil
	}
	thresholds := make([]float64, 0, len(distinct)-1)
	for i := 1; i < len(distinct); i++ {
		thresholds = append(thresholds, (distinct[i-1]+distinct[i])/2.0)
	}
	return thresholds
}

func partition(s *dataset.Subset, attribute int, threshold float64) *Candidate {
	c := &Candidate{Attribute: attribute, Threshold: threshold}
	for i, v := range s.AttributeValues[attribute] {
		if v < threshold {
			c.LeftRows = append(c.LeftRows, s.RowIndices[i])
			c.LeftTargets = append(c.LeftTargets, s.TargetValues[i])
		} else {
			c.RightRows = append(c.RightRows, s.RowIndices[i])
			c.RightTargets = append(c.RightTargets, s.TargetValues[i])
		}
	}
	return c
}
