package report

import (
	"testing"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
	"github.com/pbanos/c45/tree"
	"github.com/stretchr/testify/assert"
)

func grownTree() *tree.Tree {
	x := feature.NewContinuousFeature("X", 0)
	root := &tree.Node{
		Samples:      4,
		Entropy:      1.0,
		Distribution: []tree.ClassCount{{Class: 0, Count: 2}, {Class: 1, Count: 2}},
		Split:        &tree.Split{Feature: x, Threshold: 2.5, InformationGain: 1, SplitInformation: 1, GainRatio: 1},
		Left:         &tree.Node{Depth: 1, Samples: 2, Class: 0, Stop: tree.Pure},
		Right:        &tree.Node{Depth: 1, Samples: 2, Class: 1, Stop: tree.Pure},
	}
	return tree.New(root, "Y", []*feature.ContinuousFeature{x})
}

func TestRender(t *testing.T) {
	ds := dataset.New([]string{"X", "Y"}, [][]string{{"1", "0"}, {"2", "0"}, {"3", "1"}, {"4", "1"}})
	tr := grownTree()
	want := "File information:\n" +
		"Detected delimiter: comma (,)\n" +
		"Rows: 4\n" +
		"Columns: 2\n" +
		"Numeric attributes:\n" +
		"  X\n" +
		"Target column: Y\n\n" +
		"=== DETAILED TREE CONSTRUCTION ===\n\n" +
		"TRACE\n\n" +
		"=== FINAL DECISION TREE ===\n\n" +
		tr.String()
	assert.Equal(t, want, Render(ds, Source{Delimiter: ','}, tr, "TRACE\n"))
}

func TestRenderWithoutTrace(t *testing.T) {
	ds := dataset.New([]string{"X", "Y"}, [][]string{{"1", "0", "extra"}, {"2"}})
	out := Render(ds, Source{Table: "samples"}, grownTree(), "")
	assert.Contains(t, out, "Source table: samples\n")
	assert.Contains(t, out, "Rows repaired to header width: 2\n")
	assert.NotContains(t, out, "DETAILED TREE CONSTRUCTION")
	assert.Contains(t, out, "=== FINAL DECISION TREE ===\n\n`-- X < 2.50\n")
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "Detected delimiter: tab", Source{Delimiter: '\t'}.String())
	assert.Equal(t, "Detected delimiter: pipe (|)", Source{Delimiter: '|', Table: "ignored"}.String())
	assert.Equal(t, "Source table: points", Source{Table: "points"}.String())
}
