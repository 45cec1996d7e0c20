package dataset

import (
	"context"
	"fmt"

	"github.com/pbanos/c45/feature"
)

/*
RowSample is a row of a Dataset seen as a feature.Sample. Features are looked
up by column name, so a tree grown on one dataset can evaluate rows of another
one with the same column names in any order.
*/
type RowSample struct {
	ds  *Dataset
	row int
}

// NewRowSample takes a dataset and the index of one of its rows and returns
// the row as a sample.
func NewRowSample(ds *Dataset, row int) *RowSample {
	return &RowSample{ds, row}
}

/*
ValueFor returns the value of the sample for the given feature. A cell that
does not parse as a number takes the AttributePolicy default value, the same
one used when growing trees. An error is returned if the dataset has no column
named after the feature.
*/
func (s *RowSample) ValueFor(_ context.Context, f feature.Feature) (float64, error) {
	column := s.ds.ColumnIndex(f.Name())
	if column < 0 {
		return 0, fmt.Errorf("sample has no value for feature %s", f.Name())
	}
	v, _, _ := AttributePolicy.ParseAttribute(s.ds.Cell(s.row, column))
	return v, nil
}

/*
Target returns the class label of the sample in the given target column and
whether it parses under the TargetPolicy.
*/
func (s *RowSample) Target(column int) (int, bool) {
	y, keep, _ := TargetPolicy.ParseTarget(s.ds.Cell(s.row, column))
	return y, keep
}

func (s *RowSample) String() string {
	return fmt.Sprintf("%v", s.ds.Row(s.row))
}
