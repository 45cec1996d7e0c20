package main

import (
	"context"
	"strings"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/dataset/csv"
	"github.com/pbanos/c45/dataset/sqldataset"
	"github.com/pbanos/c45/dataset/sqldataset/pgadapter"
	"github.com/pbanos/c45/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/c45/report"
	"github.com/sirupsen/logrus"
)

/*
readDataset takes a context and an input string and returns the dataset read
from it and its source. The input may be a PostgreSQL connection URL, a path
to an SQLite3 (.db) file, a path to a delimited file or "" for a delimited
file on STDIN. SQL inputs are read from the input.table table.
*/
func (rc *rootCmdConfig) readDataset(ctx context.Context, input string) (*dataset.Dataset, report.Source, error) {
	table := rc.v.GetString("input.table")
	if strings.HasPrefix(input, pgadapter.URLPrefix) {
		rc.log.WithField("table", table).Info("reading dataset from PostgreSQL")
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, report.Source{}, err
		}
		defer adapter.Close()
		ds, err := sqldataset.ReadDataset(ctx, adapter, table, rc.log)
		return ds, report.Source{Table: table}, err
	}
	if strings.HasSuffix(input, ".db") {
		rc.log.WithFields(logrus.Fields{"path": input, "table": table}).Info("reading dataset from SQLite3")
		adapter, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, report.Source{}, err
		}
		defer adapter.Close()
		ds, err := sqldataset.ReadDataset(ctx, adapter, table, rc.log)
		return ds, report.Source{Table: table}, err
	}
	if input == "" {
		rc.log.Info("reading dataset from STDIN")
	} else {
		rc.log.WithField("path", input).Info("reading dataset")
	}
	ds, d, err := csv.ReadDatasetFromFilePath(input, rc.log)
	return ds, report.Source{Delimiter: d}, err
}

// openAdapter returns the SQL adapter for an output string: a PostgreSQL
// connection URL or a path to an SQLite3 file.
func openAdapter(output string) (sqldataset.Adapter, error) {
	if strings.HasPrefix(output, pgadapter.URLPrefix) {
		return pgadapter.New(output)
	}
	return sqlite3adapter.New(output)
}
