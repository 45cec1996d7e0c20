/*
Package c45 grows binary decision trees from datasets with numeric attribute
columns and an integer target column, choosing every split by gain ratio as
C4.5 does for continuous attributes.
*/
package c45

import (
	"fmt"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
	"github.com/pbanos/c45/tree"
	"github.com/sirupsen/logrus"
)

/*
FeatureSelector takes a dataset and the indices of its numeric non-target
columns and returns the features to grow a tree with.
*/
type FeatureSelector func(ds *dataset.Dataset, numericColumns []int) []*feature.ContinuousFeature

/*
Pot grows trees. Its Stopper decides which nodes are left as leaves, its
Tracer receives the events of the growth and its Selector, when not nil,
restricts the features used.
*/
type Pot struct {
	Stopper  Stopper
	Tracer   Tracer
	Selector FeatureSelector
	log      logrus.FieldLogger
}

/*
New takes a Stopper, a Tracer and a logger and returns a Pot with them. A nil
stopper means DefaultStoppingStrategy, a nil tracer NopTracer and a nil
logger the logrus standard logger.
*/
func New(s Stopper, tr Tracer, log logrus.FieldLogger) *Pot {
	if s == nil {
		s = DefaultStoppingStrategy()
	}
	if tr == nil {
		tr = NopTracer{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pot{Stopper: s, Tracer: tr, log: log.WithField("module", "c45")}
}

/*
BuildTree takes a dataset and a tracer and grows a tree from it with the
default stopping strategy, using every numeric column as attribute.
*/
func BuildTree(ds *dataset.Dataset, tr Tracer, log logrus.FieldLogger) (*tree.Tree, error) {
	return New(nil, tr, log).Grow(ds)
}

// Features returns the features p grows trees on for the given dataset,
// together with its target column.
func (p *Pot) Features(ds *dataset.Dataset) ([]*feature.ContinuousFeature, int, error) {
	target, err := ds.TargetColumn()
	if err != nil {
		return nil, -1, err
	}
	numeric := ds.NumericColumns(target)
	var features []*feature.ContinuousFeature
	if p.Selector != nil {
		features = p.Selector(ds, numeric)
	} else {
		for _, c := range numeric {
			features = append(features, feature.NewContinuousFeature(ds.ColumnName(c), c))
		}
	}
	if len(features) == 0 {
		return nil, target, dataset.ErrNoNumericColumns
	}
	return features, target, nil
}

/*
Grow takes a dataset and returns the tree grown from its rows to predict its
target column (see Dataset.TargetColumn). It fails with an error wrapping
dataset.ErrNoTargetColumn or dataset.ErrNoNumericColumns before any split is
attempted.
*/
func (p *Pot) Grow(ds *dataset.Dataset) (*tree.Tree, error) {
	features, target, err := p.Features(ds)
	if err != nil {
		return nil, fmt.Errorf("growing tree from %v: %w", ds, err)
	}
	columns := make([]int, len(features))
	for i, f := range features {
		columns[i] = f.Column()
	}
	ex := dataset.NewExtractor(ds, target, columns, p.log)
	root := ex.Extract(ds.RowIndices())
	if len(root.DroppedRows) > 0 {
		p.log.WithField("rows", len(root.DroppedRows)).Warn("dropped rows with unparsable target value")
	}
	if root.Count() == 0 {
		p.log.WithField("label", ds.ColumnName(target)).Warn("no row has a valid target value, growing an empty leaf")
	}
	if root.DefaultedCells > 0 {
		p.log.WithField("cells", root.DefaultedCells).Warn("defaulted unparsable attribute values to 0.0")
	}
	p.log.WithFields(logrus.Fields{
		"samples":  root.Count(),
		"features": len(features),
		"label":    ds.ColumnName(target),
	}).Info("growing tree")
	t := tree.New(p.grow(ex, root, features, 0), ds.ColumnName(target), features)
	p.log.WithField("leaves", t.Leaves()).Info("tree grown")
	return t, nil
}

func (p *Pot) grow(ex *dataset.Extractor, s *dataset.Subset, features []*feature.ContinuousFeature, depth int) *tree.Node {
	n := &tree.Node{
		Depth:        depth,
		Samples:      s.Count(),
		Entropy:      Entropy(s.TargetValues),
		Class:        MajorityClass(s.TargetValues),
		Distribution: ClassDistribution(s.TargetValues),
		RowIndices:   s.RowIndices,
	}
	p.Tracer.NodeStarted(n)
	p.Tracer.RowsRecovered(depth, s.DroppedRows, s.DefaultedCells)
	if reason, ok := p.Stopper.Stop(n); ok {
		n.Stop = reason
		p.Tracer.LeafDeclared(n)
		return n
	}
	best := FindBestSplit(s, features, depth, p.Tracer)
	if !best.Usable() {
		n.Stop = tree.NoGain
		p.Tracer.LeafDeclared(n)
		return n
	}
	n.Split = &tree.Split{
		Feature:          best.Feature,
		Threshold:        best.Threshold,
		InformationGain:  best.InformationGain,
		SplitInformation: best.SplitInformation,
		GainRatio:        best.GainRatio,
	}
	p.Tracer.InternalDeclared(n)
	p.log.WithFields(logrus.Fields{"depth": depth, "split": n.Split.String()}).Debug("split node")
	if left := ex.Extract(best.LeftRows); left.Count() > 0 {
		p.Tracer.SubtreeStarted(depth, true)
		n.Left = p.grow(ex, left, features, depth+1)
	}
	if right := ex.Extract(best.RightRows); right.Count() > 0 {
		p.Tracer.SubtreeStarted(depth, false)
		n.Right = p.grow(ex, right, features, depth+1)
	}
	return n
}
