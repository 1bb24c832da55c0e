// Package main is the entry point for the tourtag CLI and Taskwarrior hook.
package main

import (
	"os"

	"github.com/aidanlsb/tourtag/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
