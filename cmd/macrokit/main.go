package main

import (
	"os"

	"github.com/macroforge/macrokit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
