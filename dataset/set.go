package dataset

import (
	"fmt"
)

/*
Dataset represents a table of samples loaded from some source: an ordered
slice of column names (the header) and an ordered slice of rows, each of them
an ordered slice of string cells with exactly one cell per column.

A Dataset is immutable once built: every method returning its data returns
copies or read-only views that must not be modified.
*/
type Dataset struct {
	columnNames []string
	rows        [][]string
	repaired    int
}

/*
New takes a slice of column names and a slice of rows and returns a Dataset
with them. Rows whose width differs from the number of column names are
repaired: short rows are padded with empty cells and long rows are truncated.
The given slices are copied, so the caller may reuse them afterwards.
*/
func New(columnNames []string, rows [][]string) *Dataset {
	names := append([]string(nil), columnNames...)
	ds := &Dataset{columnNames: names, rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		if len(row) != len(names) {
			ds.repaired++
		}
		ds.rows = append(ds.rows, FitRow(row, len(names)))
	}
	return ds
}

// RepairedRows returns how many rows were padded or truncated by New.
func (ds *Dataset) RepairedRows() int {
	return ds.repaired
}

// FitRow returns a copy of row with exactly width cells, padding it with
// empty strings or truncating it as needed.
func FitRow(row []string, width int) []string {
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}

// ColumnNames returns the names of the columns of the dataset in order.
func (ds *Dataset) ColumnNames() []string {
	return append([]string(nil), ds.columnNames...)
}

// ColumnName returns the name of the column with the given index.
func (ds *Dataset) ColumnName(column int) string {
	return ds.columnNames[column]
}

// ColumnCount returns the number of columns in the dataset header.
func (ds *Dataset) ColumnCount() int {
	return len(ds.columnNames)
}

/*
ColumnIndex takes a column name and returns the index of the first column with
exactly that name, or -1 if the dataset has no such column.
*/
func (ds *Dataset) ColumnIndex(name string) int {
	for i, n := range ds.columnNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Count returns the number of rows in the dataset.
func (ds *Dataset) Count() int {
	return len(ds.rows)
}

// Cell returns the content of the cell at the given row and column.
func (ds *Dataset) Cell(row, column int) string {
	return ds.rows[row][column]
}

// Row returns a copy of the row with the given index.
func (ds *Dataset) Row(row int) []string {
	return append([]string(nil), ds.rows[row]...)
}

// RowIndices returns a slice with the indices of every row, in order.
func (ds *Dataset) RowIndices() []int {
	indices := make([]int, len(ds.rows))
	for i := range indices {
		indices[i] = i
	}
	return indices
}

/*
IsNumericColumn takes a column index and returns whether the column holds
numeric data: among its non-empty cells, strictly more than 80% must start
with a number (see ParseFloat). Columns without non-empty cells are not numeric.
*/
func (ds *Dataset) IsNumericColumn(column int) bool {
	if column < 0 || column >= len(ds.columnNames) {
		return false
	}
	var numeric, total int
	for _, row := range ds.rows {
		cell := row[column]
		if cell == "" {
			continue
		}
		total++
		if _, err := ParseFloat(cell); err == nil {
			numeric++
		}
	}
	return total > 0 && float64(numeric)/float64(total) > numericColumnRatio
}

/*
NumericColumns returns the indices, in column order, of every numeric column
(see IsNumericColumn) other than the ones given as excluded.
*/
func (ds *Dataset) NumericColumns(excluded ...int) []int {
	var columns []int
	for i := range ds.columnNames {
		if containsInt(excluded, i) {
			continue
		}
		if ds.IsNumericColumn(i) {
			columns = append(columns, i)
		}
	}
	return columns
}

/*
TargetColumn returns the index of the first column named exactly "Y" or "y",
or ErrNoTargetColumn if the dataset has none.
*/
func (ds *Dataset) TargetColumn() (int, error) {
	for i, name := range ds.columnNames {
		if name == "Y" || name == "y" {
			return i, nil
		}
	}
	return -1, ErrNoTargetColumn
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("[ %d x %d ]", len(ds.rows), len(ds.columnNames))
}

const numericColumnRatio = 0.8

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
