// Package main is the entry point for the tether CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/tether-cli/tether/cmd"
	"github.com/tether-cli/tether/internal/logging"
)

func main() {
	logging.Debug("starting tether cli")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
