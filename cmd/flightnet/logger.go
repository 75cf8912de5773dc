package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds a development zap logger writing to stderr at level,
// or at debug when debug is set.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	at, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if debug {
		at.SetLevel(zap.DebugLevel)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = at
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return logger.Named("flightnet"), nil
}
