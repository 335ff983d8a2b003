package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MijinkoSD/go-doublearray/doublearray"
	"github.com/MijinkoSD/go-doublearray/internal/dictfile"
	"github.com/MijinkoSD/go-doublearray/internal/snapshot"
)

// build command flags
var (
	inputPath    string
	outputPrefix string
	buildSorted  bool
	initialSize  int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a trie from a YAML or TSV dictionary",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuild(logger, inputPath, outputPrefix, snapFormat, buildSorted, initialSize); err != nil {
			logger.Fatal("Failed to build trie", zap.String("input", inputPath), zap.Error(err))
		}
	},
}

func init() {
	buildCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Dictionary file (.yaml, .yml, .tsv, .txt)")
	buildCmd.Flags().StringVarP(&outputPrefix, "output", "o", "", "Snapshot path prefix")
	buildCmd.Flags().StringVar(&snapFormat, "format", string(snapshot.FormatRaw), "Snapshot format (raw or cbor)")
	buildCmd.Flags().BoolVar(&buildSorted, "sorted", false, "Trust the dictionary order (still checked)")
	buildCmd.Flags().IntVar(&initialSize, "initial-size", 0, "Initial array size (0 uses the dictionary or library default)")

	_ = buildCmd.MarkFlagRequired("input")
	_ = buildCmd.MarkFlagRequired("output")
}

func runBuild(logger *zap.Logger, input, output, format string, sorted bool, size int) error {
	snapFmt, err := snapshot.ParseFormat(format)
	if err != nil {
		return err
	}

	dict, err := dictfile.Load(input)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	opts := append(dict.Options(), doublearray.WithLogger(logger))
	if size > 0 {
		opts = append(opts, doublearray.WithInitialSize(size))
	}

	trie, err := doublearray.NewBuilder(opts...).BuildFrom(dict.KVs(), sorted || dict.Sorted)
	if err != nil {
		return err
	}

	if err := snapshot.Save(trie, output, snapFmt); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	st := trie.Calc()

	logger.Info("trie written",
		zap.Strings("files", snapshot.Paths(output, snapFmt)),
		zap.Int("keys", len(dict.Entries)),
		zap.Int("size", st.All),
		zap.Float64("efficiency", st.Efficiency),
	)

	return nil
}
