package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print slot usage of a trie",
	Args:  cobra.NoArgs,
	Run:   withTrie(runStats),
}

func runStats(w io.Writer, trie *doublearray.Trie, _ []string) {
	st := trie.Calc()

	fmt.Fprintf(w, "size: %d\nunused: %d\nefficiency: %.3f\n", st.All, st.Unused, st.Efficiency)
}
