package c45

import (
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/c45/feature"
	"github.com/pbanos/c45/tree"
)

/*
Tracer receives the events of growing a tree, in the order they happen. Depth
is the depth of the node the event refers to.
*/
type Tracer interface {
	NodeStarted(n *tree.Node)
	RowsRecovered(depth int, dropped []int, defaulted int)
	LeafDeclared(n *tree.Node)
	SplitSearchStarted(depth, samples int, entropy float64, dist []tree.ClassCount)
	FeatureStarted(depth int, f *feature.ContinuousFeature)
	NotEnoughValues(depth int, f *feature.ContinuousFeature)
	ThresholdEvaluated(depth int, c *Candidate, best bool)
	SplitSearchFinished(depth int, best *Candidate)
	InternalDeclared(n *tree.Node)
	SubtreeStarted(depth int, left bool)
}

// NopTracer is a Tracer that ignores every event.
type NopTracer struct{}

func (NopTracer) NodeStarted(*tree.Node)                                  {}
func (NopTracer) RowsRecovered(int, []int, int)                           {}
func (NopTracer) LeafDeclared(*tree.Node)                                 {}
func (NopTracer) SplitSearchStarted(int, int, float64, []tree.ClassCount) {}
func (NopTracer) FeatureStarted(int, *feature.ContinuousFeature)          {}
func (NopTracer) NotEnoughValues(int, *feature.ContinuousFeature)         {}
func (NopTracer) ThresholdEvaluated(int, *Candidate, bool)                {}
func (NopTracer) SplitSearchFinished(int, *Candidate)                     {}
func (NopTracer) InternalDeclared(*tree.Node)                             {}
func (NopTracer) SubtreeStarted(int, bool)                                {}

/*
TextTracer is a Tracer that writes a human-readable construction log, every
line indented two spaces per depth level. Thresholds are written with 2
decimals and metrics with 4. Write errors are kept and returned by Err, and
nothing else is written after the first one.
*/
type TextTracer struct {
	w   io.Writer
	err error
}

// NewTextTracer returns a TextTracer writing on w.
func NewTextTracer(w io.Writer) *TextTracer {
	return &TextTracer{w: w}
}

// Err returns the first error obtained writing the trace.
func (t *TextTracer) Err() error {
	return t.err
}

func (t *TextTracer) printf(depth int, format string, a ...interface{}) {
	if t.err != nil {
		return
	}
	if _, t.err = io.WriteString(t.w, strings.Repeat("  ", depth)); t.err == nil {
		_, t.err = fmt.Fprintf(t.w, format, a...)
	}
}

func (t *TextTracer) NodeStarted(n *tree.Node) {
	t.printf(n.Depth, "NODE AT DEPTH %d:\n", n.Depth)
	t.printf(n.Depth, "Samples: %d\n", n.Samples)
	t.printf(n.Depth, "Entropy: %.4f\n", n.Entropy)
	counts := make([]string, len(n.Distribution))
	for i, cc := range n.Distribution {
		counts[i] = fmt.Sprintf("%d=%d", cc.Class, cc.Count)
	}
	t.printf(n.Depth, "Classes: %s\n", strings.Join(counts, " "))
}

func (t *TextTracer) RowsRecovered(depth int, dropped []int, defaulted int) {
	if len(dropped) > 0 {
		t.printf(depth, "Rows dropped for unparsable target: %d\n", len(dropped))
	}
	if defaulted > 0 {
		t.printf(depth, "Attribute values defaulted to 0.0: %d\n", defaulted)
	}
}

func (t *TextTracer) LeafDeclared(n *tree.Node) {
	t.printf(n.Depth, "LEAF: predicted class = %d (%s)\n", n.Class, n.Stop)
}

func (t *TextTracer) SplitSearchStarted(depth, samples int, entropy float64, dist []tree.ClassCount) {
	t.printf(depth, "=== BEST SPLIT SEARCH ===\n")
	t.printf(depth, "Depth: %d\n\n", depth)
	t.printf(depth, "Initial entropy: %.4f\n", entropy)
	t.printf(depth, "Samples: %d\n", samples)
	t.printf(depth, "Class distribution:\n")
	for _, cc := range dist {
		t.printf(depth, "  class %d: %d samples\n", cc.Class, cc.Count)
	}
	t.printf(0, "\n")
}

func (t *TextTracer) FeatureStarted(depth int, f *feature.ContinuousFeature) {
	t.printf(depth, "--- Attribute: %s ---\n", f.Name())
}

func (t *TextTracer) NotEnoughValues(depth int, f *feature.ContinuousFeature) {
	t.printf(depth, "Not enough distinct values\n\n")
}

func (t *TextTracer) ThresholdEvaluated(depth int, c *Candidate, best bool) {
	t.printf(depth, "Threshold %.2f:\n", c.Threshold)
	t.printf(depth, "  Information Gain = %.4f\n", c.InformationGain)
	t.printf(depth, "  Split Information = %.4f\n", c.SplitInformation)
	t.printf(depth, "  Gain Ratio = %.4f\n", c.GainRatio)
	t.printf(depth, "  Left branch: %d samples (entropy: %.4f)\n", len(c.LeftTargets), c.LeftEntropy)
	t.printf(depth, "  Right branch: %d samples (entropy: %.4f)\n", len(c.RightTargets), c.RightEntropy)
	if best {
		t.printf(depth, "  !!! NEW BEST RESULT !!!\n")
	}
	t.printf(0, "\n")
}

func (t *TextTracer) SplitSearchFinished(depth int, best *Candidate) {
	if !best.Usable() {
		t.printf(depth, "No suitable split found\n\n")
		return
	}
	t.printf(depth, "BEST SPLIT:\n")
	t.printf(depth, "Attribute: %s\n", best.Feature.Name())
	t.printf(depth, "Threshold: %.2f\n", best.Threshold)
	t.printf(depth, "Information Gain: %.4f\n", best.InformationGain)
	t.printf(depth, "Split Information: %.4f\n", best.SplitInformation)
	t.printf(depth, "Gain Ratio: %.4f\n", best.GainRatio)
	t.printf(depth, "Left branch: %d samples, entropy: %.4f\n", len(best.LeftTargets), best.LeftEntropy)
	t.printf(depth, "Right branch: %d samples, entropy: %.4f\n\n", len(best.RightTargets), best.RightEntropy)
}

func (t *TextTracer) InternalDeclared(n *tree.Node) {
	t.printf(n.Depth, "INTERNAL NODE:\n")
	t.printf(n.Depth, "Condition: %v\n", n.Split)
	t.printf(n.Depth, "Gain Ratio: %.4f\n\n", n.Split.GainRatio)
}

func (t *TextTracer) SubtreeStarted(depth int, left bool) {
	if left {
		t.printf(depth, "BUILDING LEFT SUBTREE:\n")
		return
	}
	t.printf(depth, "BUILDING RIGHT SUBTREE:\n")
}
