// Package main provides the CLI entrypoint for petab-mapper.
//
// petab-mapper reads a PEtab problem and:
//   - lints its tables and reports every violation
//   - resolves the per-condition parameter and scale mappings
//   - generates a parameter table skeleton for the problem
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
