// Package main - точка входа офлайн CLI neorisk.
package main

import (
	"fmt"
	"os"

	"github.com/shenikar/neo_risk_system/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
