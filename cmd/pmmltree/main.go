package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	verbose       bool
	pmmlInput     string
	metadataInput string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "pmmltree",
		Short: "pmmltree is a tool to use PMML decision trees",
		Long:  `A tool to convert PMML tree models into flat node tables, test them, and use them to make predictions`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.verbose = viper.GetBool("verbose")
			config.pmmlInput = viper.GetString("pmml")
			config.metadataInput = viper.GetString("metadata")
			setupLogging(config.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress messages to STDERR")
	rootCmd.PersistentFlags().StringP("pmml", "p", "", "path to the PMML file with the tree model")
	rootCmd.PersistentFlags().StringP("metadata", "m", "", "path to a YML file with metadata declaring field values missing in the PMML file")
	rootCmd.PersistentFlags().String("redis-addr", "", "address of a Redis server to store trees in or load them from")
	rootCmd.PersistentFlags().String("redis-password", "", "password for the Redis server")
	rootCmd.PersistentFlags().Int("redis-db", 0, "number of the Redis DB to use")
	rootCmd.PersistentFlags().String("redis-prefix", "pmmltree", "prefix of the Redis keys of the tree")

	viper.SetEnvPrefix("pmmltree")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Error("failed to bind persistent flags")
	}

	rootCmd.AddCommand(versionCmd(), convertCmd(config), treeCmd(config), fieldsCmd(config), testCmd(config), predictCmd(config))
	return rootCmd
}
