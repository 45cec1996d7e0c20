package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/c45/dataset/sqldataset"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput    string
	setOutput   string
	outputTable string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a set of data into an SQL table",
		Long:  `Copy a set of data from a delimited file or SQL table into a table of an SQLite3 file or PostgreSQL DB`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			bindFlags(config.v, cmd.Flags(), map[string]string{
				"input.table": "table",
			})
			ctx := context.Background()
			ds, _, err := config.readDataset(ctx, config.setInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			adapter, err := openAdapter(config.setOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer adapter.Close()
			n, err := sqldataset.WriteDataset(ctx, adapter, config.outputTable, ds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing set: %v\n", err)
				os.Exit(4)
			}
			config.log.WithField("rows", n).Info("set written")
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input delimited or SQLite3 (.db) file, or a PostgreSQL DB connection URL (defaults to STDIN, interpreted as delimited text)")
	cmd.Flags().String("table", "", "table to read the data from on SQL inputs (defaults to samples)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an SQLite3 (.db) file or a PostgreSQL DB connection URL to write the set to (required)")
	cmd.Flags().StringVar(&(config.outputTable), "output-table", sqldataset.DefaultTable, "table to write the set to")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setOutput == "" {
		return fmt.Errorf("required output flag was not set")
	}
	return nil
}
