package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/c45"
	"github.com/pbanos/c45/feature/yaml"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	trainingInput string
	testingInput  string
	metadataInput string
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set of data and test its performance against a testing set with the same column names`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer config.ContextCancelFunc()()
			bindFlags(config.v, cmd.Flags(), map[string]string{
				"grow.max-depth":   "max-depth",
				"grow.min-samples": "min-samples",
				"input.table":      "table",
			})
			ss, err := config.stoppingStrategy()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pot := c45.New(ss, nil, config.log)
			if config.metadataInput != "" {
				md, err := yaml.ReadFeaturesFromFile(config.metadataInput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				pot.Selector = md.Features
			}
			trainingSet, _, err := config.readDataset(config.Context(), config.trainingInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			testingSet, _, err := config.readDataset(config.Context(), config.testingInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			target, err := testingSet.TargetColumn()
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing set: %v\n", err)
				os.Exit(4)
			}
			t, err := pot.Grow(trainingSet)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.log.WithField("samples", testingSet.Count()).Info("testing tree")
			successRate, skipped, err := t.Test(config.Context(), testingSet, target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(6)
			}
			fmt.Printf("%f success rate, skipped %d samples without a valid target value\n", successRate, skipped)
		},
	}
	cmd.Flags().StringVarP(&(config.trainingInput), "input", "i", "", "path to an input delimited or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to grow the tree (defaults to STDIN, interpreted as delimited text)")
	cmd.Flags().StringVarP(&(config.testingInput), "test", "t", "", "path to an input delimited or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to test the tree against (required)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file declaring the continuous features to grow the tree with (defaults to every numeric column)")
	cmd.Flags().String("table", "", "table to read the data from on SQL inputs (defaults to samples)")
	cmd.Flags().Int("max-depth", c45.DefaultMaxDepth, "depth at which nodes are no longer split")
	cmd.Flags().Int("min-samples", c45.DefaultMinimumSamples, "number of samples under which nodes are not split")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testingInput == "" {
		return fmt.Errorf("required test flag was not set")
	}
	return nil
}

func (tcc *testCmdConfig) Context() context.Context {
	tcc.setContextAndCancelFunc()
	return tcc.ctx
}

func (tcc *testCmdConfig) ContextCancelFunc() context.CancelFunc {
	tcc.setContextAndCancelFunc()
	return tcc.cancelFunc
}

func (tcc *testCmdConfig) setContextAndCancelFunc() {
	if tcc.ctx == nil {
		tcc.ctx, tcc.cancelFunc = context.WithCancel(context.Background())
	}
}
