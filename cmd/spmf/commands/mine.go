/*
File: mine.go
Description: Mine command implementation for the SPMF wrapper. Builds the
miner configuration and dataset from flags, runs the full encode-invoke-decode
pipeline, and optionally exports the decoded patterns.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/hodlen/spmf-go/pkg/miner"
	"github.com/hodlen/spmf-go/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunMine executes the full mining pipeline
func RunMine(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	config := createMinerConfig()
	dataset, err := createDataset()
	if err != nil {
		return err
	}

	m, err := miner.New(config, log)
	if err != nil {
		return fmt.Errorf("failed to create miner: %w", err)
	}

	patterns, err := m.Mine(context.Background(), dataset)
	if err != nil {
		return fmt.Errorf("mining failed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"algorithm": config.Algorithm,
		"patterns":  len(patterns),
		"output":    config.OutputPath,
	}).Info("Mining completed")

	return exportPatterns(patterns,
		viper.GetString("csv_out"),
		viper.GetString("json_out"),
		report.CSVOptions{ListsAsJSON: viper.GetBool("lists_as_json")})
}

// createMinerConfig builds the miner configuration from viper.
func createMinerConfig() *interfaces.MinerConfig {
	return &interfaces.MinerConfig{
		Algorithm:  viper.GetString("algorithm"),
		EngineDir:  viper.GetString("engine_dir"),
		JavaPath:   viper.GetString("java_path"),
		OutputPath: viper.GetString("output_path"),
		Arguments:  viper.GetStringSlice("engine_args"),
		MemoryMB:   viper.GetInt("memory_mb"),
		Timeout:    viper.GetDuration("timeout"),
	}
}

// createDataset builds the input dataset from flags, in the same priority
// order the encoder resolves: input file, raw string, structured sequences.
func createDataset() (*interfaces.Dataset, error) {
	ds := &interfaces.Dataset{Mode: interfaces.InputModeNormal}
	if viper.GetBool("text_mode") {
		ds.Mode = interfaces.InputModeText
	}

	if path := viper.GetString("input_file"); path != "" {
		ds.FilePath = path
		return ds, nil
	}
	if raw := viper.GetString("raw_input"); raw != "" {
		ds.Raw = raw
		return ds, nil
	}
	if path := viper.GetString("sequences_file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sequences file: %w", err)
		}
		if err := json.Unmarshal(data, &ds.Sequences); err != nil {
			return nil, fmt.Errorf("failed to parse sequences file: %w", err)
		}
		return ds, nil
	}

	// An empty dataset is rejected by the encoder with ErrInvalidInput,
	// keeping the CLI and library behavior identical.
	return ds, nil
}

// exportPatterns writes the requested CSV/JSON exports.
func exportPatterns(patterns []interfaces.Pattern, csvPath, jsonPath string, opts report.CSVOptions) error {
	if csvPath != "" {
		if err := report.SaveCSV(csvPath, patterns, opts); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
		log.WithField("path", csvPath).Info("CSV export written")
	}
	if jsonPath != "" {
		if err := report.SaveJSON(jsonPath, patterns); err != nil {
			return fmt.Errorf("JSON export failed: %w", err)
		}
		log.WithField("path", jsonPath).Info("JSON export written")
	}
	return nil
}
