/*
Package report renders the text report of growing a tree: a summary of the
dataset, the construction trace and the final tree.
*/
package report

import (
	"fmt"
	"strings"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/dataset/csv"
	"github.com/pbanos/c45/tree"
)

/*
Source describes where a dataset was read from: the detected delimiter for
delimited files, or the table for SQL databases.
*/
type Source struct {
	Delimiter rune
	Table     string
}

func (s Source) String() string {
	if s.Delimiter != 0 {
		return fmt.Sprintf("Detected delimiter: %s", csv.DelimiterName(s.Delimiter))
	}
	return fmt.Sprintf("Source table: %s", s.Table)
}

/*
Render takes the dataset a tree was grown from, its source, the tree and the
construction trace, and returns the report text. The output depends only on
its arguments.
*/
func Render(ds *dataset.Dataset, src Source, t *tree.Tree, trace string) string {
	var b strings.Builder
	b.WriteString("File information:\n")
	fmt.Fprintf(&b, "%v\n", src)
	fmt.Fprintf(&b, "Rows: %d\n", ds.Count())
	fmt.Fprintf(&b, "Columns: %d\n", ds.ColumnCount())
	if n := ds.RepairedRows(); n > 0 {
		fmt.Fprintf(&b, "Rows repaired to header width: %d\n", n)
	}
	b.WriteString("Numeric attributes:\n")
	for _, f := range t.Features {
		fmt.Fprintf(&b, "  %s\n", f.Name())
	}
	fmt.Fprintf(&b, "Target column: %s\n\n", t.Label)
	if trace != "" {
		b.WriteString("=== DETAILED TREE CONSTRUCTION ===\n\n")
		b.WriteString(trace)
		b.WriteString("\n")
	}
	b.WriteString("=== FINAL DECISION TREE ===\n\n")
	b.WriteString(t.String())
	return b.String()
}
