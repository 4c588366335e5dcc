// Package main is the entry point of the task worker. It shares the
// dependency graph of the API through internal/container and exposes the
// poll loop and the stuck-task sweeps as cobra subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
