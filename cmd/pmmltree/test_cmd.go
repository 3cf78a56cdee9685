package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	inputConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree model",
		Long:  `Test the performance of a PMML tree model against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.validatePMML()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			c, err := config.classifier()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testingSet, err := config.openDataset(ctx, inputFields(c))
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(3)
			}
			count, err := testingSet.Count(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting testing set samples: %v\n", err)
				os.Exit(4)
			}
			log.Debugf("Testing tree against testset with %d samples...", count)
			successRate, errorCount, err := c.Test(ctx, testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			log.Debug("Done")
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.table), "table", "samples", "name of the table or collection with the samples when reading them from a database")
	return cmd
}
