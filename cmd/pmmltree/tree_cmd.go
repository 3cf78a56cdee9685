package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/pmmltree/tree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a node table",
		Long:  `Show the node table of a tree read from a PMML file, a JSON file or Redis`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := config.loadTree(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Print(t)
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to show will be read and parsed as JSON")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.pmmlInput == "" && tcc.treeInput == "" && !redisConfigured() {
		return fmt.Errorf("one of pmml, tree or redis-addr flags must be set")
	}
	return nil
}

func (tcc *treeCmdConfig) loadTree(ctx context.Context) (*tree.Tree, error) {
	if tcc.pmmlInput != "" {
		c, err := tcc.classifier()
		if err != nil {
			return nil, err
		}
		return c.Tree, nil
	}
	if tcc.treeInput != "" {
		return loadJSONTree(ctx, tcc.treeInput)
	}
	store, err := redisStore()
	if err != nil {
		return nil, err
	}
	defer store.Close(ctx)
	return store.Load(ctx)
}
