/*
File: main.go
Description: Command-line interface for the SPMF wrapper. Provides the mine,
parse, export, and check commands with configuration management through flags,
environment variables, and optional config files.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hodlen/spmf-go/cmd/spmf/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	logFile    string

	// Engine configuration
	engineDir string
	javaPath  string

	// Mining configuration
	algorithm     string
	inputFile     string
	rawInput      string
	sequencesFile string
	textMode      bool
	outputPath    string
	memoryMB      int
	timeout       time.Duration
	engineArgs    []string

	// Export configuration
	csvOut      string
	jsonOut     string
	listsAsJSON bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spmf",
		Short: "SPMF wrapper - drive the SPMF pattern-mining engine from the command line",
		Long: `spmf wraps the SPMF sequential and itemset pattern-mining engine. It encodes
input data into the engine's text format, invokes the engine jar as a
subprocess, parses the mined patterns back into structured records, and
exports them as CSV or JSON.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Optional log file mirrored alongside stderr")
	rootCmd.PersistentFlags().StringVar(&engineDir, "engine-dir", ".", "Directory containing spmf.jar")
	rootCmd.PersistentFlags().StringVar(&javaPath, "java", "java", "Java runtime binary")

	// Bind persistent flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("engine_dir", rootCmd.PersistentFlags().Lookup("engine-dir"))
	viper.BindPFlag("java_path", rootCmd.PersistentFlags().Lookup("java"))

	// Add mine command
	mineCmd := &cobra.Command{
		Use:   "mine",
		Short: "Run the full mining pipeline",
		Long: `Encode the input data, invoke the SPMF engine on it, and decode the mined
patterns. Input is a pre-encoded file, a raw string in engine format, or a
JSON file of structured sequences.`,
		RunE: commands.RunMine,
	}

	mineCmd.Flags().StringVar(&algorithm, "algorithm", "", "SPMF algorithm name (required)")
	mineCmd.Flags().StringVar(&inputFile, "input", "", "Pre-encoded input artifact (passed through untouched)")
	mineCmd.Flags().StringVar(&rawInput, "raw", "", "Raw input text already in engine format")
	mineCmd.Flags().StringVar(&sequencesFile, "sequences", "", "JSON file holding sequences of itemsets of items")
	mineCmd.Flags().BoolVar(&textMode, "text-mode", false, "Treat raw input as text mode (.text artifact)")
	mineCmd.Flags().StringVar(&outputPath, "output", "spmf-output.txt", "Engine output artifact path")
	mineCmd.Flags().IntVar(&memoryMB, "memory", 0, "JVM heap budget in megabytes (0 = JVM default)")
	mineCmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-run timeout (0 = block until the engine exits)")
	mineCmd.Flags().StringSliceVar(&engineArgs, "arg", []string{}, "Extra algorithm argument (repeatable)")
	mineCmd.Flags().StringVar(&csvOut, "csv", "", "Write decoded patterns to this CSV file")
	mineCmd.Flags().StringVar(&jsonOut, "json-out", "", "Write decoded patterns to this JSON file")
	mineCmd.Flags().BoolVar(&listsAsJSON, "lists-as-json", false, "Render CSV list columns as JSON lists")

	mineCmd.MarkFlagRequired("algorithm")

	viper.BindPFlag("algorithm", mineCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("input_file", mineCmd.Flags().Lookup("input"))
	viper.BindPFlag("raw_input", mineCmd.Flags().Lookup("raw"))
	viper.BindPFlag("sequences_file", mineCmd.Flags().Lookup("sequences"))
	viper.BindPFlag("text_mode", mineCmd.Flags().Lookup("text-mode"))
	viper.BindPFlag("output_path", mineCmd.Flags().Lookup("output"))
	viper.BindPFlag("memory_mb", mineCmd.Flags().Lookup("memory"))
	viper.BindPFlag("timeout", mineCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("engine_args", mineCmd.Flags().Lookup("arg"))
	viper.BindPFlag("csv_out", mineCmd.Flags().Lookup("csv"))
	viper.BindPFlag("json_out", mineCmd.Flags().Lookup("json-out"))
	viper.BindPFlag("lists_as_json", mineCmd.Flags().Lookup("lists-as-json"))

	rootCmd.AddCommand(mineCmd)

	// Add parse command
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Decode an existing engine output artifact",
		Long: `Decode an SPMF output artifact into structured pattern records and print a
summary. Useful for inspecting results of engine runs performed elsewhere.`,
		RunE: commands.RunParse,
	}

	parseCmd.Flags().String("file", "", "Engine output artifact to decode (required)")
	parseCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseCmd)

	// Add export command
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Decode an output artifact and export it as CSV or JSON",
		RunE:  commands.RunExport,
	}

	exportCmd.Flags().String("file", "", "Engine output artifact to decode (required)")
	exportCmd.Flags().String("csv", "", "CSV destination path")
	exportCmd.Flags().String("json-out", "", "JSON destination path")
	exportCmd.Flags().Bool("lists-as-json", false, "Render CSV list columns as JSON lists")
	exportCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(exportCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Validate that spmf.jar can be located, the Java runtime is on the PATH, and
the temp directory is writable. Useful before wiring the wrapper into a pipeline.`,
		RunE: commands.PerformSelfCheck,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
