package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger configures logging to stderr, keeping stdout for results
func setupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
