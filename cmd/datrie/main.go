package main

import (
	"os"

	"github.com/MijinkoSD/go-doublearray/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
