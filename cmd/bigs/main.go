// Package main is the entry point for the bigs CLI.
package main

import (
	"os"

	"github.com/katalvlaran/bigs/cmd/bigs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
