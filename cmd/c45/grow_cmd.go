package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/c45"
	"github.com/pbanos/c45/feature/yaml"
	"github.com/pbanos/c45/report"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict its Y column and print a report with the construction trace and the tree.`,
		Run: func(cmd *cobra.Command, args []string) {
			bindFlags(config.v, cmd.Flags(), map[string]string{
				"grow.max-depth":   "max-depth",
				"grow.min-samples": "min-samples",
				"grow.trace":       "trace",
				"input.table":      "table",
			})
			ss, err := config.stoppingStrategy()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pot := c45.New(ss, nil, config.log)
			if config.metadataInput != "" {
				config.log.WithField("path", config.metadataInput).Info("reading features from metadata")
				md, err := yaml.ReadFeaturesFromFile(config.metadataInput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				pot.Selector = md.Features
			}
			ds, src, err := config.readDataset(context.Background(), config.dataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			var trace bytes.Buffer
			var tracer *c45.TextTracer
			if config.v.GetBool("grow.trace") {
				tracer = c45.NewTextTracer(&trace)
				pot.Tracer = tracer
			}
			t, err := pot.Grow(ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			if tracer != nil && tracer.Err() != nil {
				fmt.Fprintf(os.Stderr, "writing construction trace: %v\n", tracer.Err())
				os.Exit(5)
			}
			err = outputReport(config.output, report.Render(ds, src, t, trace.String()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input delimited (.csv, .txt...) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as delimited text)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file declaring the continuous features to grow the tree with (defaults to every numeric column)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the report will be written (defaults to STDOUT)")
	cmd.Flags().String("table", "", "table to read the data from on SQL inputs (defaults to samples)")
	cmd.Flags().Int("max-depth", c45.DefaultMaxDepth, "depth at which nodes are no longer split")
	cmd.Flags().Int("min-samples", c45.DefaultMinimumSamples, "number of samples under which nodes are not split")
	cmd.Flags().Bool("trace", true, "include the detailed construction trace in the report")
	return cmd
}

func outputReport(outputPath, text string) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating report file %s: %v", outputPath, err)
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	return nil
}
