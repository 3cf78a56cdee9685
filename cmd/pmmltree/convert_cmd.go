package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/pmmltree/tree"
	"github.com/pbanos/pmmltree/tree/json"
	"github.com/spf13/cobra"
)

type convertCmdConfig struct {
	*rootCmdConfig
	output string
}

func convertCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &convertCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a PMML tree model into a node table",
		Long:  `Flatten the tree model of a PMML file into a node table and write it in JSON format or store it in Redis`,
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
			if redisConfigured() {
				err = config.storeInRedis(ctx, c.Tree)
			} else {
				err = config.writeJSON(ctx, c.Tree)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			log.Debug("Done")
		},
	}
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the node table will be written in JSON format (defaults to STDOUT, ignored if redis-addr is set)")
	return cmd
}

func (ccc *convertCmdConfig) storeInRedis(ctx context.Context, t *tree.Tree) error {
	store, err := redisStore()
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	log.Debug("Storing tree in redis...")
	return store.Save(ctx, t)
}

func (ccc *convertCmdConfig) writeJSON(ctx context.Context, t *tree.Tree) error {
	f := os.Stdout
	if ccc.output != "" {
		var err error
		f, err = os.Create(ccc.output)
		if err != nil {
			return fmt.Errorf("creating output file %s: %v", ccc.output, err)
		}
		defer f.Close()
	}
	log.Debug("Writing tree in JSON...")
	err := json.WriteJSONTree(ctx, t, json.NewNodeEncodeDecoder(), f)
	if err != nil {
		return fmt.Errorf("writing tree in JSON: %v", err)
	}
	return nil
}
