package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MijinkoSD/go-doublearray/doublearray"
	"github.com/MijinkoSD/go-doublearray/internal/snapshot"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup KEY...",
	Short: "Print the record of each key (-1 when absent)",
	Args:  cobra.MinimumNArgs(1),
	Run:   withTrie(runLookup),
}

var containCmd = &cobra.Command{
	Use:   "contain KEY...",
	Short: "Report whether each key is stored",
	Args:  cobra.MinimumNArgs(1),
	Run:   withTrie(runContain),
}

var prefixCmd = &cobra.Command{
	Use:   "prefix KEY...",
	Short: "List stored keys that are prefixes of each key",
	Args:  cobra.MinimumNArgs(1),
	Run:   withTrie(runPrefix),
}

func init() {
	for _, cmd := range []*cobra.Command{lookupCmd, containCmd, prefixCmd, statsCmd, dumpCmd} {
		addTrieFlags(cmd)
	}
}

func addTrieFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&trieFile, "trie", "t", "", "Snapshot path prefix")
	cmd.Flags().StringVar(&snapFormat, "format", string(snapshot.FormatRaw), "Snapshot format (raw or cbor)")

	_ = cmd.MarkFlagRequired("trie")
}

// withTrie opens the snapshot named by the flags and hands it to fn.
func withTrie(fn func(w io.Writer, trie *doublearray.Trie, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		trie, err := openTrie(logger, trieFile, snapFormat)
		if err != nil {
			logger.Fatal("Failed to open trie", zap.String("trie", trieFile), zap.Error(err))
		}

		fn(cmd.OutOrStdout(), trie, args)
	}
}

func openTrie(logger *zap.Logger, prefix, format string) (*doublearray.Trie, error) {
	snapFmt, err := snapshot.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	trie, err := snapshot.Open(prefix, snapFmt, doublearray.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	logger.Debug("trie opened", zap.String("prefix", prefix), zap.Int("size", trie.Size()))

	return trie, nil
}

func runLookup(w io.Writer, trie *doublearray.Trie, keys []string) {
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%d\n", key, trie.Lookup(key))
	}
}

func runContain(w io.Writer, trie *doublearray.Trie, keys []string) {
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%t\n", key, trie.Contain(key))
	}
}

func runPrefix(w io.Writer, trie *doublearray.Trie, keys []string) {
	for _, key := range keys {
		for _, kv := range trie.CommonPrefixSearch(key) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", key, kv.Key, kv.Val)
		}
	}
}
