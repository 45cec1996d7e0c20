package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/c45"
	"github.com/pbanos/c45/dataset/inputsample"
	"github.com/pbanos/c45/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	undefinedValue string
}

type stdoutFeatureValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of a sample answering questions",
		Long:  `Grow a tree from a set of data and use it to predict the class of a sample answering a reduced set of questions about its features`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
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
			ctx := context.Background()
			ds, _, err := config.readDataset(ctx, config.dataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := c45.New(ss, nil, config.log).Grow(ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			sample := inputsample.New(os.Stdin, stdoutFeatureValueRequester(config.undefinedValue), config.undefinedValue)
			prediction, err := t.Predict(ctx, sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted %s is %v\n", t.Label, prediction)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input delimited or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to grow the tree (required)")
	cmd.Flags().String("table", "", "table to read the data from on SQL inputs (defaults to samples)")
	cmd.Flags().Int("max-depth", c45.DefaultMaxDepth, "depth at which nodes are no longer split")
	cmd.Flags().Int("min-samples", c45.DefaultMinimumSamples, "number of samples under which nodes are not split")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a sample's value for a feature as undefined")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.dataInput == "" {
		return fmt.Errorf("required input flag was not set, STDIN is used for the answers")
	}
	return nil
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	fmt.Printf("Please provide the sample's %s:\n(valid values are real numbers or %s if undefined)\n", f.Name(), string(sfvr))
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	fmt.Printf("%v is not a valid value for the sample's %s. Please provide a real number or %s if undefined.\n", value, f.Name(), string(sfvr))
	return nil
}
