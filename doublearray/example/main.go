package main

import (
	"fmt"

	"github.com/MijinkoSD/go-doublearray/doublearray"
)

func main() {
	trie, err := doublearray.NewBuilder(doublearray.WithInitialSize(16)).
		Append("a", 1).
		Append("abc", 2).
		Append("奈良", 3).
		Append("奈良先端", 4).
		Append("奈良先端科学技術大学院大学", 5).
		Append("ト", 6).
		Append("トト", 7).
		Append("トトロ", 8).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(trie.Dump())

	fmt.Printf("Contain(a)   -> %v\n", trie.Contain("a"))
	fmt.Printf("Lookup(abc)  -> %d\n", trie.Lookup("abc"))
	fmt.Printf("Lookup(ab)   -> %d\n", trie.Lookup("ab"))

	println("------")

	for _, kv := range trie.CommonPrefixSearch("奈良先端科学技術大学院大学") {
		fmt.Printf("%s: %d\n", kv.Key, kv.Val)
	}

	println("------")

	st := trie.Calc()
	fmt.Printf("all: %d, unused: %d, efficiency: %.3f\n", st.All, st.Unused, st.Efficiency)
}
