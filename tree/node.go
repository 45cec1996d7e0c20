package tree

import (
	"fmt"

	"github.com/pbanos/c45/feature"
)

/*
Node is a node of the tree. Every node, leaf or internal, records the
statistics of the rows it was grown from. A node is a leaf when its Split is
nil, and then Stop holds the reason it was not developed. An internal node
exclusively owns its children; either of them may be nil when the rows of
its branch could not be extracted.
*/
type Node struct {
	// Depth of the node in the tree, 0 for the root.
	Depth int
	// Number of samples the node was grown from.
	Samples int
	// Entropy of the class labels of those samples.
	Entropy float64
	// The majority class of the samples, the smallest label on ties.
	Class int
	// The number of samples per class label, in ascending label order.
	Distribution []ClassCount
	// Indices of the dataset rows the node was grown from.
	RowIndices []int
	// The split dividing the node samples among its children.
	Split *Split
	// Why the node was left as a leaf.
	Stop StopReason
	Left  *Node
	Right *Node
}

// ClassCount is the number of samples with a class label.
type ClassCount struct {
	Class int
	Count int
}

/*
Split is the binary test of an internal node: samples whose value for the
feature is below the threshold go to the left child, the rest to the right
child.
*/
type Split struct {
	Feature          *feature.ContinuousFeature
	Threshold        float64
	InformationGain  float64
	SplitInformation float64
	GainRatio        float64
}

// Criteria returns the criteria that select the left and the right child of
// the split.
func (s *Split) Criteria() (left, right *feature.ThresholdCriterion) {
	return feature.NewBelowCriterion(s.Feature, s.Threshold), feature.NewAtLeastCriterion(s.Feature, s.Threshold)
}

func (s *Split) String() string {
	return fmt.Sprintf("%s < %.2f", s.Feature.Name(), s.Threshold)
}

// IsLeaf returns whether the node has no split.
func (n *Node) IsLeaf() bool {
	return n.Split == nil
}

// StopReason tells why a node was not developed further.
type StopReason string

const (
	// Pure means all samples of the node share the same class.
	Pure = StopReason("pure partition")
	// TooFewSamples means the node has too few samples to be split.
	TooFewSamples = StopReason("not enough samples")
	// MaxDepthReached means the node lies at the depth limit.
	MaxDepthReached = StopReason("maximum depth reached")
	// NoGain means no split yields a positive gain ratio.
	NoGain = StopReason("no gain ratio improvement")
)
