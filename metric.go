package c45

import (
	"math"
	"sort"

	"github.com/pbanos/c45/tree"
)

// SplitInformationEpsilon is the split information under which the gain
// ratio of a split is taken to be 0.
const SplitInformationEpsilon = 1e-10

// NoClass is the majority class of a set without labels.
const NoClass = -1

/*
Entropy takes a slice of class labels and returns the entropy in bits of
their frequency distribution, or 0.0 for an empty slice.
*/
func Entropy(labels []int) float64 {
	if len(labels) == 0 {
		return 0.0
	}
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	// Summing in label order keeps results reproducible to the last bit.
	classes := make([]int, 0, len(counts))
	for c := range counts {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	total := float64(len(labels))
	var entropy float64
	for _, c := range classes {
		p := float64(counts[c]) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

/*
SplitInformation takes the sizes of both sides of a binary partition and
returns the entropy of the partition itself. Empty sides contribute nothing,
and the result is 0.0 when both sides are empty.
*/
func SplitInformation(leftSize, rightSize int) float64 {
	total := float64(leftSize + rightSize)
	if total == 0 {
		return 0.0
	}
	var si float64
	for _, size := range []int{leftSize, rightSize} {
		if size == 0 {
			continue
		}
		r := float64(size) / total
		si -= r * math.Log2(r)
	}
	return si
}

/*
InformationGain takes the entropy of a set, the entropies of both sides of a
partition of it and their sizes, and returns the parent entropy minus the
size-weighted average of the side entropies.
*/
func InformationGain(parentEntropy, leftEntropy, rightEntropy float64, leftSize, rightSize int) float64 {
	total := float64(leftSize + rightSize)
	if total == 0 {
		return 0.0
	}
	// Weighting each side before adding keeps a split of equally impure sides
	// at exactly zero gain.
	weighted := float64(leftSize)/total*leftEntropy + float64(rightSize)/total*rightEntropy
	return parentEntropy - weighted
}

/*
GainRatio returns the information gain divided by the split information, or
0.0 when the split information is below SplitInformationEpsilon.
*/
func GainRatio(informationGain, splitInformation float64) float64 {
	if splitInformation < SplitInformationEpsilon {
		return 0.0
	}
	return informationGain / splitInformation
}

/*
ClassDistribution takes a slice of class labels and returns the number of
occurrences of each label, in ascending label order.
*/
func ClassDistribution(labels []int) []tree.ClassCount {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	dist := make([]tree.ClassCount, 0, len(counts))
	for c, n := range counts {
		dist = append(dist, tree.ClassCount{Class: c, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Class < dist[j].Class })
	return dist
}

/*
MajorityClass takes a slice of class labels and returns the most frequent one.
Among equally frequent labels the smallest wins. It returns NoClass for an
empty slice.
*/
func MajorityClass(labels []int) int {
	class, best := NoClass, 0
	for _, cc := range ClassDistribution(labels) {
		if cc.Count > best {
			class, best = cc.Class, cc.Count
		}
	}
	return class
}
