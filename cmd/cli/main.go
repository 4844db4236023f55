// Package main is the entry point for the netsalary CLI.
package main

import (
	"os"

	"netsalary/cmd/cli/cmd"
	"netsalary/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
