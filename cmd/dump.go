package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the BASE/CHECK arrays and the occupancy map",
	Args:  cobra.NoArgs,
	Run:   withTrie(runDump),
}

func runDump(w io.Writer, trie *doublearray.Trie, _ []string) {
	_, _ = io.WriteString(w, trie.Dump())
}
