package c45

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
	"github.com/pbanos/c45/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTracer struct {
	events []string
}

func (rt *recordingTracer) record(format string, a ...interface{}) {
	rt.events = append(rt.events, fmt.Sprintf(format, a...))
}

func (rt *recordingTracer) NodeStarted(n *tree.Node) { rt.record("node %d", n.Depth) }
func (rt *recordingTracer) RowsRecovered(depth int, dropped []int, defaulted int) {
	rt.record("recovered %d %d %d", depth, len(dropped), defaulted)
}
func (rt *recordingTracer) LeafDeclared(n *tree.Node) { rt.record("leaf %d %s", n.Depth, n.Stop) }
func (rt *recordingTracer) SplitSearchStarted(depth, samples int, _ float64, _ []tree.ClassCount) {
	rt.record("search %d %d", depth, samples)
}
func (rt *recordingTracer) FeatureStarted(depth int, f *feature.ContinuousFeature) {
	rt.record("feature %d %s", depth, f.Name())
}
func (rt *recordingTracer) NotEnoughValues(depth int, f *feature.ContinuousFeature) {
	rt.record("skip %d %s", depth, f.Name())
}
func (rt *recordingTracer) ThresholdEvaluated(depth int, c *Candidate, best bool) {
	rt.record("threshold %d %.2f %v", depth, c.Threshold, best)
}
func (rt *recordingTracer) SplitSearchFinished(depth int, best *Candidate) {
	rt.record("found %d %v", depth, best.Usable())
}
func (rt *recordingTracer) InternalDeclared(n *tree.Node) { rt.record("internal %d %v", n.Depth, n.Split) }
func (rt *recordingTracer) SubtreeStarted(depth int, left bool) {
	rt.record("subtree %d %v", depth, left)
}

type failingWriter struct {
	writes int
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.writes++
	return 0, errors.New("disk full")
}

func perfectSplitDataset() *dataset.Dataset {
	return dataset.New([]string{"X", "C", "Y"}, [][]string{
		{"1", "7", "0"},
		{"2", "7", "0"},
		{"3", "7", "1"},
		{"4", "7", "1"},
	})
}

func TestGrowEventOrder(t *testing.T) {
	tracer := &recordingTracer{}
	_, err := BuildTree(perfectSplitDataset(), tracer, nullLogger())
	require.NoError(t, err)
	want := []string{
		"node 0",
		"recovered 0 0 0",
		"search 0 4",
		"feature 0 X",
		"threshold 0 1.50 true",
		"threshold 0 2.50 true",
		"threshold 0 3.50 false",
		"feature 0 C",
		"skip 0 C",
		"found 0 true",
		"internal 0 X < 2.50",
		"subtree 0 true",
		"node 1",
		"recovered 1 0 0",
		"leaf 1 pure partition",
		"subtree 0 false",
		"node 1",
		"recovered 1 0 0",
		"leaf 1 pure partition",
	}
	assert.Equal(t, want, tracer.events)
}

func TestTextTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewTextTracer(&buf)
	_, err := BuildTree(perfectSplitDataset(), tracer, nullLogger())
	require.NoError(t, err)
	require.NoError(t, tracer.Err())
	trace := buf.String()

	assert.True(t, strings.HasPrefix(trace, "NODE AT DEPTH 0:\nSamples: 4\nEntropy: 1.0000\nClasses: 0=2 1=2\n=== BEST SPLIT SEARCH ===\n"))
	assert.Contains(t, trace, "Class distribution:\n  class 0: 2 samples\n  class 1: 2 samples\n")
	assert.Contains(t, trace, "--- Attribute: C ---\nNot enough distinct values\n")
	assert.Contains(t, trace, "Threshold 2.50:\n"+
		"  Information Gain = 1.0000\n"+
		"  Split Information = 1.0000\n"+
		"  Gain Ratio = 1.0000\n"+
		"  Left branch: 2 samples (entropy: 0.0000)\n"+
		"  Right branch: 2 samples (entropy: 0.0000)\n"+
		"  !!! NEW BEST RESULT !!!\n")
	assert.Equal(t, 2, strings.Count(trace, "NEW BEST RESULT"))
	assert.Contains(t, trace, "INTERNAL NODE:\nCondition: X < 2.50\nGain Ratio: 1.0000\n")
	assert.Contains(t, trace, "BUILDING LEFT SUBTREE:\n  NODE AT DEPTH 1:\n  Samples: 2\n")
	assert.Contains(t, trace, "  Entropy: 0.0000\n  Classes: 1=2\n  LEAF: predicted class = 1 (pure partition)\n")
	assert.NotContains(t, trace, "Rows dropped")

	var again bytes.Buffer
	_, err = BuildTree(perfectSplitDataset(), NewTextTracer(&again), nullLogger())
	require.NoError(t, err)
	assert.Equal(t, trace, again.String())
}

func TestTextTracerRecoveredRowsAndNoSplit(t *testing.T) {
	ds := dataset.New([]string{"X", "Y"}, [][]string{
		{"1", "0"},
		{"bad", "1"},
		{"2", "x"},
		{"0", "1"},
		{"3", "0"},
		{"4", "1"},
	})
	var buf bytes.Buffer
	_, err := BuildTree(ds, NewTextTracer(&buf), nullLogger())
	require.NoError(t, err)
	trace := buf.String()
	assert.Contains(t, trace, "Rows dropped for unparsable target: 1\n")
	assert.Contains(t, trace, "Attribute values defaulted to 0.0: 1\n")

	ds = dataset.New([]string{"X", "Y"}, [][]string{{"1", "1"}, {"1", "0"}})
	buf.Reset()
	_, err = BuildTree(ds, NewTextTracer(&buf), nullLogger())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No suitable split found\n")
	assert.Contains(t, buf.String(), "LEAF: predicted class = 0 (no gain ratio improvement)\n")
}

func TestTextTracerKeepsFirstError(t *testing.T) {
	fw := &failingWriter{}
	tracer := NewTextTracer(fw)
	_, err := BuildTree(perfectSplitDataset(), tracer, nullLogger())
	require.NoError(t, err)
	assert.EqualError(t, tracer.Err(), "disk full")
	assert.Equal(t, 1, fw.writes)
}
