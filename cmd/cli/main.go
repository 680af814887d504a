// Package main is the entry point for the kitcheck CLI.
package main

import (
	"os"

	"kitcheck/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
