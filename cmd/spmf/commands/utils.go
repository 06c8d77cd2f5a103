/*
File: utils.go
Description: Shared utilities for the SPMF wrapper commands. Provides common
configuration loading and logging setup used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/hodlen/spmf-go/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// log is the shared command logger, set up once per invocation.
var log *logrus.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("SPMF")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logger, err := logging.New(&logging.Config{
		Level: viper.GetString("log_level"),
		JSON:  viper.GetBool("json_logs"),
		File:  viper.GetString("log_file"),
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	log = logger
	return nil
}
