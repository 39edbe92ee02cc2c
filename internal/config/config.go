// Package config handles the setup of the disassembler application.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the diagnostic logger of the disassembler. Debug
// lowers the log level for extended decode logging, quiet raises it so
// that only errors reach the diagnostic stream. Listing output never goes
// through the logger.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
