/*
File: interfaces.go
Description: Shared types and interfaces for the SPMF wrapper. Defines the core
data structures used across all packages (patterns, input datasets, miner
configuration, run records) to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"context"
	"time"
)

// Pattern represents a single decoded result line from the engine output.
// A Pattern is only ever constructed fully populated; partial patterns do not exist.
type Pattern struct {
	Elements    []int `json:"pattern"`      // Flat ordered item list (itemset boundaries are not preserved)
	Support     int   `json:"sup"`          // Number of sequences containing the pattern
	SequenceIDs []int `json:"sequence_ids"` // Input sequences that contained the pattern, in engine order
}

// InputMode selects the textual encoding of the engine input artifact.
type InputMode string

const (
	// InputModeNormal encodes sequences of itemsets of integer items,
	// with -1 ending an itemset and -2 ending a sequence.
	InputModeNormal InputMode = "normal"
	// InputModeText encodes free-text sequences joined by ". " separators.
	InputModeText InputMode = "text"
)

// Extension returns the input artifact file extension for the mode.
func (m InputMode) Extension() string {
	if m == InputModeText {
		return ".text"
	}
	return ".txt"
}

// Dataset is the caller-supplied input union. Exactly one field should be set;
// resolution order is FilePath > Raw > Sequences > Texts. An empty Dataset is
// rejected with ErrInvalidInput before any file I/O happens.
type Dataset struct {
	FilePath  string    // Pre-encoded artifact on disk, passed through untouched
	Raw       string    // Raw text already in engine format, written verbatim to a temp artifact
	Sequences [][][]int // Structured sequences of itemsets of items (normal mode)
	Texts     []string  // Opaque text sequences (text mode)
	Mode      InputMode // Encoding for Raw input; defaults to normal
}

// MinerConfig holds the configuration for one mining pipeline.
type MinerConfig struct {
	Algorithm  string        // SPMF algorithm name, e.g. "PrefixSpan" (required)
	EngineDir  string        // Directory searched first for spmf.jar; "." when empty
	JavaPath   string        // Java runtime binary; "java" when empty
	OutputPath string        // Engine output artifact path (required, caller-owned, not uniquified)
	Arguments  []string      // Extra algorithm arguments appended to the command line
	MemoryMB   int           // JVM heap budget in megabytes; 0 omits the -Xmx flag
	Timeout    time.Duration // Per-run timeout; 0 blocks until the engine exits
	TempDir    string        // Directory for input artifacts; OS default when empty
}

// RunResult is the captured record of one engine invocation.
type RunResult struct {
	RunID    string        `json:"run_id"`   // Unique identifier for this invocation
	Command  []string      `json:"command"`  // Full argv handed to the runtime
	Output   string        `json:"output"`   // Combined stdout/stderr text
	Duration time.Duration `json:"duration"` // Wall-clock time of the invocation
	ExitCode int           `json:"exit_code"`
}

// InputEncoder materializes a Dataset as an input artifact on disk and
// returns its path. The artifact is never cleaned up automatically; ownership
// transfers to the caller and the engine.
type InputEncoder interface {
	Materialize(ds *Dataset) (string, error)
}

// OutputDecoder parses an engine output artifact into patterns, one per line,
// in file order. Any malformed line aborts the whole decode.
type OutputDecoder interface {
	DecodeFile(path string) ([]Pattern, error)
}

// EngineRunner invokes the engine synchronously on an already-encoded input
// artifact and reports the captured invocation record.
type EngineRunner interface {
	Run(ctx context.Context, inputPath, outputPath string) (*RunResult, error)
}

// Reporter defines telemetry hooks for pipeline events.
// Allows the miner to notify listeners of invocations and decode results.
type Reporter interface {
	// OnRunCompleted is called after the engine invocation returns, on success or failure.
	OnRunCompleted(result *RunResult)
	// OnPatternsDecoded is called after the output artifact has been fully decoded.
	OnPatternsDecoded(patterns []Pattern)
}
