package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/c45/feature/yaml"
	"github.com/spf13/cobra"
)

type columnsCmdConfig struct {
	*rootCmdConfig
	dataInput string
	asYAML    bool
}

func columnsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &columnsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the columns of a set of data",
		Long:  `List the columns of a set of data in order, telling which ones are numeric and which one is the target`,
		Run: func(cmd *cobra.Command, args []string) {
			bindFlags(config.v, cmd.Flags(), map[string]string{
				"input.table": "table",
			})
			ds, _, err := config.readDataset(context.Background(), config.dataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.asYAML {
				if err = yaml.WriteFeatures(os.Stdout, ds); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				return
			}
			target, _ := ds.TargetColumn()
			for i, name := range ds.ColumnNames() {
				kind := "non-numeric"
				switch {
				case i == target:
					kind = "target"
				case ds.IsNumericColumn(i):
					kind = "numeric"
				}
				fmt.Printf("%d\t%s\t%s\n", i, name, kind)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input delimited or SQLite3 (.db) file, or a PostgreSQL DB connection URL (defaults to STDIN, interpreted as delimited text)")
	cmd.Flags().String("table", "", "table to read the data from on SQL inputs (defaults to samples)")
	cmd.Flags().BoolVar(&(config.asYAML), "yaml", false, "print the columns as a YML metadata file that grow accepts")
	return cmd
}
