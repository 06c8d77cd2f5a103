/*
File: miner.go
Description: Pipeline facade for the SPMF wrapper. Wires the input encoder,
engine runner, and output decoder into one strictly sequential pipeline:
resolve input, encode, invoke the engine, decode the output artifact. Notifies
registered reporters of invocation and decode events.
*/

package miner

import (
	"context"
	"fmt"

	"github.com/hodlen/spmf-go/pkg/engine"
	"github.com/hodlen/spmf-go/pkg/format"
	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/hodlen/spmf-go/pkg/report"
	"github.com/sirupsen/logrus"
)

// Miner runs the full mining pipeline for one configuration.
// No shared mutable state exists across miners: each pipeline run creates its
// own uniquely named input artifact. The output path is caller-supplied and
// not uniquified, so concurrent miners must use distinct output paths.
type Miner struct {
	config    *interfaces.MinerConfig
	encoder   interfaces.InputEncoder
	decoder   interfaces.OutputDecoder
	runner    interfaces.EngineRunner
	reporters []interfaces.Reporter
	logger    *logrus.Logger
}

// New validates the configuration, resolves the engine jar, and wires the
// pipeline components. A missing jar fails here, before any work begins.
func New(config *interfaces.MinerConfig, logger *logrus.Logger) (*Miner, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	runner, err := engine.NewRunner(config, logger)
	if err != nil {
		return nil, err
	}

	m := &Miner{
		config:  config,
		encoder: format.NewEncoder(config.TempDir),
		decoder: format.NewDecoder(),
		runner:  runner,
		logger:  logger,
	}
	m.AddReporter(report.NewLoggerReporter(logger))
	return m, nil
}

// AddReporter registers a telemetry hook for pipeline events.
func (m *Miner) AddReporter(r interfaces.Reporter) {
	m.reporters = append(m.reporters, r)
}

// SetRunner replaces the engine runner. Used to substitute a fake engine in tests.
func (m *Miner) SetRunner(r interfaces.EngineRunner) {
	m.runner = r
}

// Mine executes the pipeline: materialize the dataset as an input artifact,
// invoke the engine, decode the output artifact. Blocking and sequential
// throughout; every failure is returned synchronously with no retries.
func (m *Miner) Mine(ctx context.Context, ds *interfaces.Dataset) ([]interfaces.Pattern, error) {
	inputPath, err := m.encoder.Materialize(ds)
	if err != nil {
		return nil, err
	}
	m.logger.WithFields(logrus.Fields{
		"algorithm": m.config.Algorithm,
		"input":     inputPath,
	}).Debug("Input artifact ready")

	result, err := m.runner.Run(ctx, inputPath, m.config.OutputPath)
	if result != nil {
		for _, r := range m.reporters {
			r.OnRunCompleted(result)
		}
	}
	if err != nil {
		return nil, err
	}

	patterns, err := m.decoder.DecodeFile(m.config.OutputPath)
	if err != nil {
		return nil, err
	}
	for _, r := range m.reporters {
		r.OnPatternsDecoded(patterns)
	}
	return patterns, nil
}

func validateConfig(config *interfaces.MinerConfig) error {
	if config == nil {
		return fmt.Errorf("miner config is required")
	}
	if config.Algorithm == "" {
		return fmt.Errorf("algorithm name is required")
	}
	if config.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}
