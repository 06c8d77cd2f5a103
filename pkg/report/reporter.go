/*
File: reporter.go
Description: Reporter implementations for SPMF wrapper telemetry. Logs engine
invocations and decode results through the structured logger so pipeline
progress is visible without touching the data path.
*/

package report

import (
	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// LoggerReporter logs pipeline events using the structured logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &LoggerReporter{logger: logger}
}

// OnRunCompleted logs the captured invocation record.
func (r *LoggerReporter) OnRunCompleted(result *interfaces.RunResult) {
	r.logger.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"exit_code": result.ExitCode,
		"duration":  result.Duration,
	}).Info("Engine invocation finished")
}

// OnPatternsDecoded logs the size of the decoded result set.
func (r *LoggerReporter) OnPatternsDecoded(patterns []interfaces.Pattern) {
	r.logger.WithField("patterns", len(patterns)).Info("Output artifact decoded")
}
