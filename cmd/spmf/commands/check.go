/*
File: check.go
Description: Self-check command for the SPMF wrapper. Validates that the
engine jar can be located, the Java runtime is available, and the temp
directory is writable before any real pipeline run.
*/

package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hodlen/spmf-go/pkg/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck validates the environment for engine invocations
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return err
	}

	failures := 0

	jarPath, err := engine.LocateEngine(viper.GetString("engine_dir"))
	if err != nil {
		log.WithError(err).Error("Engine jar check failed")
		failures++
	} else {
		log.WithField("jar", jarPath).Info("Engine jar found")
	}

	java := viper.GetString("java_path")
	if java == "" {
		java = "java"
	}
	if resolved, err := exec.LookPath(java); err != nil {
		log.WithError(err).Error("Java runtime check failed")
		failures++
	} else {
		log.WithField("java", resolved).Info("Java runtime found")
	}

	if f, err := os.CreateTemp("", "spmf-check-*"); err != nil {
		log.WithError(err).Error("Temp directory check failed")
		failures++
	} else {
		f.Close()
		os.Remove(f.Name())
		log.Info("Temp directory writable")
	}

	if failures > 0 {
		return fmt.Errorf("self-check failed: %d check(s) did not pass", failures)
	}
	log.Info("All self-checks passed")
	return nil
}
