package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
)

// Tree represents a binary decision tree. It is composed of its root
// node, the name of the target column it predicts and the features
// it was grown with.
type Tree struct {
	Root     *Node
	Label    string
	Features []*feature.ContinuousFeature
}

// New takes a root node, a label and a slice of features and returns
// a tree with them.
func New(root *Node, label string, features []*feature.ContinuousFeature) *Tree {
	return &Tree{Root: root, Label: label, Features: features}
}

// Predict takes a sample and returns a prediction according to the tree and an
// error if the prediction could not be made. When the branch a sample goes
// down to has no node, the prediction is made from the last node reached.
func (t *Tree) Predict(ctx context.Context, s feature.Sample) (*Prediction, error) {
	if t == nil || t.Root == nil {
		return nil, ErrCannotPredictFromSample
	}
	n := t.Root
	for !n.IsLeaf() {
		left, _ := n.Split.Criteria()
		ok, err := left.SatisfiedBy(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("predicting sample at depth %d: %w", n.Depth, err)
		}
		next := n.Right
		if ok {
			next = n.Left
		}
		if next == nil {
			break
		}
		n = next
	}
	return NewPredictionFromNode(n)
}

/*
Test takes a context.Context, a dataset and the index of its target column
and returns three values:
 * the prediction success rate of the tree over the dataset rows with a valid
   target value
 * the number of rows skipped because their target value does not parse
 * an error if a prediction could not be made. If this is not nil, the other
   values will be 0.0 and 0 respectively
*/
func (t *Tree) Test(ctx context.Context, ds *dataset.Dataset, target int) (float64, int, error) {
	var hits, tested, skipped int
	for r := 0; r < ds.Count(); r++ {
		if err := ctx.Err(); err != nil {
			return 0.0, 0, err
		}
		sample := dataset.NewRowSample(ds, r)
		y, ok := sample.Target(target)
		if !ok {
			skipped++
			continue
		}
		p, err := t.Predict(ctx, sample)
		if err != nil {
			return 0.0, 0, err
		}
		tested++
		if p.Class() == y {
			hits++
		}
	}
	if tested == 0 {
		return 0.0, skipped, nil
	}
	return float64(hits) / float64(tested), skipped, nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node, left
// child first.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(ctx, t.Root, bottomup, f)
}

func traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		if err = f(ctx, n); err != nil {
			return err
		}
	}
	for _, sn := range []*Node{n.Left, n.Right} {
		if sn == nil {
			continue
		}
		if err = traverse(ctx, sn, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(ctx, n)
	}
	return nil
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	var count int
	t.Traverse(context.Background(), false, func(_ context.Context, n *Node) error {
		if n.IsLeaf() {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	if t.Root == nil {
		return ""
	}
	var b strings.Builder
	writeSubtree(&b, t.Root, "", true)
	return b.String()
}

func writeSubtree(b *strings.Builder, n *Node, prefix string, last bool) {
	connector, continuation := "|-- ", "|   "
	if last {
		connector, continuation = "`-- ", "    "
	}
	b.WriteString(prefix)
	b.WriteString(connector)
	if n.IsLeaf() {
		fmt.Fprintf(b, "LEAF: class %d\n", n.Class)
		fmt.Fprintf(b, "%s%s(entropy: %.4f, samples: %d)\n", prefix, continuation, n.Entropy, n.Samples)
		return
	}
	fmt.Fprintf(b, "%v\n", n.Split)
	fmt.Fprintf(b, "%s%s(gain ratio: %.4f, IG: %.4f)\n", prefix, continuation, n.Split.GainRatio, n.Split.InformationGain)
	if n.Left != nil {
		writeSubtree(b, n.Left, prefix+continuation, n.Right == nil)
	}
	if n.Right != nil {
		writeSubtree(b, n.Right, prefix+continuation, true)
	}
}
