package dataset

import (
	"github.com/sirupsen/logrus"
)

/*
Subset is the numeric view of a set of dataset rows on which a tree node is
grown. It is made of parallel slices:
  * AttributeValues holds one slice of values per selected attribute column
  * TargetValues holds the integer class label of each retained row
  * RowIndices maps every position back to the index of its dataset row
Every slice in AttributeValues has the same length as TargetValues and
RowIndices.
*/
type Subset struct {
	AttributeValues [][]float64
	TargetValues    []int
	RowIndices      []int
	// DroppedRows holds the dataset indices of the requested rows left out
	// because of their target cell.
	DroppedRows []int
	// DefaultedCells counts the attribute cells of retained rows that took
	// the attribute default value.
	DefaultedCells int
}

// Count returns the number of rows in the subset.
func (s *Subset) Count() int {
	return len(s.TargetValues)
}

/*
ParseFailure defines what happens to a row when one of its cells cannot be
parsed as a number.
*/
type ParseFailure int

const (
	// DropRow leaves the whole row out of the subset.
	DropRow ParseFailure = iota
	// UseDefault keeps the row, taking the policy Default as the cell value.
	UseDefault
)

// ParsePolicy defines how cells that fail to parse are handled for a role
// (target or attribute).
type ParsePolicy struct {
	OnFailure ParseFailure
	Default   float64
}

var (
	// TargetPolicy drops rows whose target cell is not an integer.
	TargetPolicy = ParsePolicy{OnFailure: DropRow}
	// AttributePolicy keeps rows with unparsable attribute cells and reads
	// those cells as 0.0. Unlike TargetPolicy it never drops a row; that
	// asymmetry is deliberate and changes which trees get built, so keep it.
	AttributePolicy = ParsePolicy{OnFailure: UseDefault, Default: 0.0}
)

func (p ParsePolicy) apply(value float64, err error) (float64, bool) {
	if err == nil {
		return value, true
	}
	if p.OnFailure == UseDefault {
		return p.Default, true
	}
	return 0, false
}

// ParseAttribute parses the leading number of cell (see ParseFloat) under
// the policy and returns the resulting value, whether the row is kept and
// whether the cell was recovered (parsing failed).
func (p ParsePolicy) ParseAttribute(cell string) (value float64, keep, recovered bool) {
	v, err := ParseFloat(cell)
	value, keep = p.apply(v, err)
	return value, keep, err != nil
}

// ParseTarget parses the leading integer of cell (see ParseInt) under the
// policy and returns the resulting value, whether the row is kept and
// whether the cell was recovered (parsing failed).
func (p ParsePolicy) ParseTarget(cell string) (value int, keep, recovered bool) {
	v, err := ParseInt(cell)
	fv, keep := p.apply(float64(v), err)
	return int(fv), keep, err != nil
}

/*
Extractor projects sets of dataset rows onto Subsets for a given target column
and list of attribute columns.
*/
type Extractor struct {
	Dataset         *Dataset
	Target          int
	Columns         []int
	TargetPolicy    ParsePolicy
	AttributePolicy ParsePolicy
	Log             logrus.FieldLogger
}

/*
NewExtractor takes a dataset, the index of its target column and the indices
of the attribute columns and returns an Extractor using TargetPolicy and
AttributePolicy. A nil logger means the logrus standard logger.
*/
func NewExtractor(ds *Dataset, target int, columns []int, log logrus.FieldLogger) *Extractor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Extractor{
		Dataset:         ds,
		Target:          target,
		Columns:         columns,
		TargetPolicy:    TargetPolicy,
		AttributePolicy: AttributePolicy,
		Log:             log.WithField("module", "dataset.extractor"),
	}
}

/*
Extract takes a slice of dataset row indices and returns the Subset for them.
Rows are processed in the given order. A row whose target cell does not parse
is handled with the TargetPolicy, an attribute cell that does not parse with the
AttributePolicy. Recovered cells are reported on the Debug level.
*/
func (e *Extractor) Extract(rows []int) *Subset {
	s := &Subset{AttributeValues: make([][]float64, len(e.Columns))}
	for i := range s.AttributeValues {
		s.AttributeValues[i] = make([]float64, 0, len(rows))
	}
	for _, r := range rows {
		if r < 0 || r >= e.Dataset.Count() {
			continue
		}
		cell := e.Dataset.Cell(r, e.Target)
		y, keep, recovered := e.TargetPolicy.ParseTarget(cell)
		if recovered {
			e.Log.WithFields(logrus.Fields{"row": r, "cell": cell}).Debug("unparsable target value")
		}
		if !keep {
			s.DroppedRows = append(s.DroppedRows, r)
			continue
		}
		row := make([]float64, len(e.Columns))
		drop := false
		for i, c := range e.Columns {
			cell := e.Dataset.Cell(r, c)
			v, keep, recovered := e.AttributePolicy.ParseAttribute(cell)
			if recovered {
				e.Log.WithFields(logrus.Fields{"row": r, "column": e.Dataset.ColumnName(c), "cell": cell}).Debug("unparsable attribute value")
				if keep {
					s.DefaultedCells++
				}
			}
			if !keep {
				drop = true
				break
			}
			row[i] = v
		}
		if drop {
			s.DroppedRows = append(s.DroppedRows, r)
			continue
		}
		for i, v := range row {
			s.AttributeValues[i] = append(s.AttributeValues[i], v)
		}
		s.TargetValues = append(s.TargetValues, y)
		s.RowIndices = append(s.RowIndices, r)
	}
	return s
}
