// Package main is the entry point for the skillhook CLI.
package main

import (
	"os"

	"github.com/dotskills/skillhook/cmd/skillhook/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
