package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	trieFile   string
	snapFormat string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datrie",
	Short: "datrie - build and query double-array trie dictionaries",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		logger, err = newLogger(verbose)

		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(containCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dumpCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
