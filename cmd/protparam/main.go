// Package main is the entry point for the protparam CLI.
package main

import (
	"os"

	"github.com/yumyai/protparam/cmd/protparam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
