/*
Package sqldataset reads datasets from, and writes them to, tables of SQL
databases.

A table maps to a dataset directly: its columns, in definition order, are the
dataset header and each of its rows is a data row. Cells are read as text, with
NULL values read as empty cells, so the rest of the pipeline sees exactly what
it would see for a delimited file with the same content.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/pbanos/c45/dataset"
	"github.com/sirupsen/logrus"
)

// DefaultTable is the name of the table datasets are read from when none is
// given.
const DefaultTable = "samples"

/*
Adapter is an interface providing the database specifics needed to read and
write datasets:
  * DB returns the database handle to run statements on
  * ColumnName takes a table or column name and returns it quoted as an
    identifier for the database, or an error if it cannot be used as one
  * Placeholder takes the 1-based position of a statement parameter and
    returns its placeholder
  * Close releases the database handle
*/
type Adapter interface {
	DB() *sql.DB
	ColumnName(string) (string, error)
	Placeholder(int) string
	Close() error
}

/*
ReadDataset takes a context, an adapter, a table name and a logger and
returns the dataset with every row of the table. An empty table name means
DefaultTable.

Errors querying the database wrap dataset.ErrFileUnreadable. A table without
rows results in dataset.ErrEmptyDataset.
*/
func ReadDataset(ctx context.Context, a Adapter, table string, log logrus.FieldLogger) (*dataset.Dataset, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("module", "dataset.sqldataset")
	if table == "" {
		table = DefaultTable
	}
	quotedTable, err := a.ColumnName(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrFileUnreadable, err)
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", quotedTable))
	if err != nil {
		return nil, fmt.Errorf("%w: querying table %s: %v", dataset.ErrFileUnreadable, table, err)
	}
	defer rows.Close()
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: listing columns of table %s: %v", dataset.ErrFileUnreadable, table, err)
	}
	if len(header) == 0 {
		return nil, dataset.ErrEmptyHeader
	}
	var records [][]string
	cells := make([]sql.NullString, len(header))
	dest := make([]interface{}, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	for rows.Next() {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning row %d of table %s: %v", dataset.ErrFileUnreadable, len(records)+1, table, err)
		}
		record := make([]string, len(cells))
		for i, c := range cells {
			if c.Valid {
				record[i] = c.String
			}
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading table %s: %v", dataset.ErrFileUnreadable, table, err)
	}
	if len(records) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	log.WithFields(logrus.Fields{"table": table, "rows": len(records), "columns": len(header)}).Debug("read dataset")
	return dataset.New(header, records), nil
}

/*
WriteDataset takes a context, an adapter, a table name and a dataset and
stores the dataset on the table, creating it with one TEXT column per dataset
column if it does not exist. An empty table name means DefaultTable. It returns
the number of rows written and an error if not all of them could be.
*/
func WriteDataset(ctx context.Context, a Adapter, table string, ds *dataset.Dataset) (int, error) {
	if table == "" {
		table = DefaultTable
	}
	quotedTable, err := a.ColumnName(table)
	if err != nil {
		return 0, err
	}
	columns := make([]string, ds.ColumnCount())
	for i, name := range ds.ColumnNames() {
		columns[i], err = a.ColumnName(name)
		if err != nil {
			return 0, err
		}
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString("CREATE TABLE IF NOT EXISTS ")
	createStmtBuf.WriteString(quotedTable)
	createStmtBuf.WriteString("(")
	for i, c := range columns {
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		createStmtBuf.WriteString(c)
		createStmtBuf.WriteString(" TEXT")
	}
	createStmtBuf.WriteString(")")
	_, err = a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return 0, fmt.Errorf("creating table %s: %v", table, err)
	}
	var insertStmtBuf bytes.Buffer
	insertStmtBuf.WriteString("INSERT INTO ")
	insertStmtBuf.WriteString(quotedTable)
	insertStmtBuf.WriteString("(")
	for i, c := range columns {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString(c)
	}
	insertStmtBuf.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString(a.Placeholder(i + 1))
	}
	insertStmtBuf.WriteString(")")
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %v", err)
	}
	insertStmt, err := tx.PrepareContext(ctx, insertStmtBuf.String())
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert command for table %s: %v", table, err)
	}
	defer insertStmt.Close()
	args := make([]interface{}, len(columns))
	for r := 0; r < ds.Count(); r++ {
		for c := range columns {
			args[c] = ds.Cell(r, c)
		}
		_, err = insertStmt.ExecContext(ctx, args...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting row %d: %v", r+1, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing %d rows: %v", ds.Count(), err)
	}
	return ds.Count(), nil
}
