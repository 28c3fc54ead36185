// Package main is the courseplanner command
package main

import (
	"fmt"
	"os"

	"github.com/apimgr/courseplanner/src/client/paths"
)

// InitCLI prepares the CLI environment.
// 1. Ensure directories exist with owner-only permissions
// 2. Initialize logging (with rotation)
func InitCLI() error {
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("init directories: %w", err)
	}

	if err := InitLogging(); err != nil {
		// Non-fatal - the stderr fallback logger is used instead
		fmt.Fprintf(os.Stderr, "Warning: could not initialize log file: %v\n", err)
		LogWarn("logging disabled", "error", err)
	}

	return nil
}
