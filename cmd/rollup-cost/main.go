// ====================================
// File: cmd/rollup-cost/main.go
// ====================================
package main

import (
	"os"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/cli"
)

func main() {
	// cobra prints the error to stderr; the process only signals failure
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
