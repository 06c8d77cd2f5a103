/*
File: logging.go
Description: Structured logging setup for the SPMF wrapper. Configures a
logrus logger with level, text or JSON formatting, and optional file output
mirrored alongside stderr.
*/

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the logger.
type Config struct {
	Level string // debug, info, warn, error
	JSON  bool   // JSON formatter instead of text
	File  string // Optional log file, mirrored alongside stderr
}

// New creates a configured logrus logger.
func New(config *Config) (*logrus.Logger, error) {
	logger := logrus.New()
	if config == nil {
		config = &Config{Level: "info"}
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	if config.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if config.File != "" {
		f, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	return logger, nil
}
