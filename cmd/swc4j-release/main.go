package main

import (
	"os"

	"github.com/caoccao/swc4j/cmd/swc4j-release/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
