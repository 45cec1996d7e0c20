package c45

import (
	"github.com/pbanos/c45/tree"
)

/*
Stopper is an interface wrapping the Stop method, used to decide whether a
node must be left as a leaf before looking for a split.

The Stop method takes a node with its statistics filled in and returns the
reason to stop and true, or false to let the node be split.
*/
type Stopper interface {
	Stop(n *tree.Node) (tree.StopReason, bool)
}

/*
StopperFunc wraps a function with the Stop method signature to implement
the Stopper interface
*/
type StopperFunc func(n *tree.Node) (tree.StopReason, bool)

// Stop invokes the StopperFunc with the node to return its result.
func (sf StopperFunc) Stop(n *tree.Node) (tree.StopReason, bool) {
	return sf(n)
}

// StoppingStrategy holds the configuration
// for when a node must not be split.
type StoppingStrategy struct {
	// MinimumEntropy is the maximum value of
	// entropy for a node that prevents it from
	// being split at all.
	MinimumEntropy float64
	// MinimumSamples is the smallest number of
	// samples a node must have to be split.
	MinimumSamples int
	// MaxDepth is the depth at which nodes are
	// no longer split.
	MaxDepth int
}

const (
	// DefaultMaxDepth is the depth at which nodes stop being split.
	DefaultMaxDepth = 10
	// DefaultMinimumSamples is the number of samples under which nodes
	// are not split.
	DefaultMinimumSamples = 2
)

/*
DefaultStoppingStrategy returns the strategy making leaves of pure nodes,
of nodes with less than 2 samples and of nodes at depth 10 or more.
*/
func DefaultStoppingStrategy() *StoppingStrategy {
	return &StoppingStrategy{
		MinimumEntropy: 0.0,
		MinimumSamples: DefaultMinimumSamples,
		MaxDepth:       DefaultMaxDepth,
	}
}

/*
Stop checks, in this order, whether the node entropy is at or below the
minimum, whether it has less than the minimum samples and whether it lies at
or past the maximum depth, returning the reason of the first check that holds.
*/
func (ss *StoppingStrategy) Stop(n *tree.Node) (tree.StopReason, bool) {
	switch {
	case n.Entropy <= ss.MinimumEntropy:
		return tree.Pure, true
	case n.Samples < ss.MinimumSamples:
		return tree.TooFewSamples, true
	case n.Depth >= ss.MaxDepth:
		return tree.MaxDepthReached, true
	}
	return "", false
}
