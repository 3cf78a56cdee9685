package main

import (
	"fmt"
	"os"

	"github.com/pbanos/pmmltree/feature/yaml"
	"github.com/spf13/cobra"
)

func fieldsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Dump the fields of a tree model",
		Long:  `Dump the fields of a PMML tree model, with the categories inferred from its splits, as YML metadata`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.validatePMML()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			c, err := rootConfig.classifier()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = yaml.WriteFeatures(os.Stdout, c.Mapping.Declarations())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
}
