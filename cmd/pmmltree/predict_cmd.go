package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/pmmltree"
	"github.com/pbanos/pmmltree/dataset/inputsample"
	"github.com/pbanos/pmmltree/feature"
	"github.com/pbanos/pmmltree/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	inputConfig
	undefinedValue string
}

type stdoutFieldValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of samples",
		Long:  `Use a PMML tree model to predict the class of the samples of a data set, or of a sample answering questions about its fields`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.validatePMML()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			c, err := config.classifier()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ctx := context.Background()
			if config.dataInput == "" {
				prediction, err := config.predictInteractively(ctx, c)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				fmt.Printf("Predicted values along their probabilities are %v\n", prediction)
				return
			}
			err = config.predictDataset(ctx, c)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the samples (defaults to asking for the values of a sample)")
	cmd.Flags().StringVar(&(config.table), "table", "samples", "name of the table or collection with the samples when reading them from a database")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a sample's value for a field as undefined")
	return cmd
}

func (pcc *predictCmdConfig) predictInteractively(ctx context.Context, c *pmmltree.Classifier) (*tree.Prediction, error) {
	sample := inputsample.New(os.Stdin, c.Mapping.Fields(), stdoutFieldValueRequester(pcc.undefinedValue), pcc.undefinedValue)
	return c.Predict(ctx, sample)
}

func (pcc *predictCmdConfig) predictDataset(ctx context.Context, c *pmmltree.Classifier) error {
	ds, err := pcc.openDataset(ctx, inputFields(c))
	if err != nil {
		return fmt.Errorf("reading samples: %v", err)
	}
	samples, err := ds.Samples(ctx)
	if err != nil {
		return fmt.Errorf("reading samples: %v", err)
	}
	for i, s := range samples {
		p, err := c.Predict(ctx, s)
		if err != nil {
			return fmt.Errorf("predicting sample %d: %v", i, err)
		}
		value, prob := p.PredictedValue()
		fmt.Printf("%d\t%s\t%f\t%v\n", i, value, prob, p)
	}
	return nil
}

func (sfvr stdoutFieldValueRequester) RequestValueFor(f *feature.Field) error {
	fmt.Printf("Please provide the sample's %s:\n(valid values are %s or %s if undefined)\n", f.Name, validValues(f), string(sfvr))
	return nil
}

func (sfvr stdoutFieldValueRequester) RejectValueFor(f *feature.Field, value interface{}, err error) error {
	fmt.Printf("%v is not a valid value for the sample's %s (%v). Please provide %s or %s if undefined.\n", value, f.Name, err, validValues(f), string(sfvr))
	return nil
}

func validValues(f *feature.Field) string {
	switch dec := f.Decoder.(type) {
	case *feature.Categorical:
		return fmt.Sprintf("one of %v", dec.Categories.Values())
	case *feature.Ordinal:
		return fmt.Sprintf("one of %v", dec.Values())
	case *feature.IntervalSet:
		intervals := make([]string, len(dec.Intervals))
		for i, in := range dec.Intervals {
			intervals[i] = in.String()
		}
		return fmt.Sprintf("real numbers in %s", strings.Join(intervals, " or "))
	case *feature.Numeric:
		if dec.Kind == feature.TypeBoolean {
			return "true or false"
		}
	}
	return "real numbers"
}
