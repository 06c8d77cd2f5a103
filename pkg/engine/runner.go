/*
File: runner.go
Description: Engine invocation adapter for the SPMF wrapper. Locates the
spmf.jar artifact, builds the java command line, runs the engine synchronously
with combined output capture, and classifies failures by exit status, missing
output artifact, and the known fatal exception text, in that order.
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// EngineJar is the file name of the engine executable artifact.
const EngineJar = "spmf.jar"

// argErrorProbe is the exception text the engine is known to print to stdout
// on fatal misconfiguration, sometimes with a zero exit status.
const argErrorProbe = "java.lang.IllegalArgumentException"

// Runner invokes the engine jar as a subprocess.
// The jar location is resolved once at construction and held in the runner.
type Runner struct {
	config  *interfaces.MinerConfig
	jarPath string
	logger  *logrus.Logger
}

// NewRunner resolves the engine jar and creates a runner. Resolution checks
// the configured engine directory first ("." when empty), then falls back to
// the directory of the running executable. A jar found nowhere is
// ErrMissingEngine, raised here before any work begins.
func NewRunner(config *interfaces.MinerConfig, logger *logrus.Logger) (*Runner, error) {
	if logger == nil {
		logger = logrus.New()
	}
	jarPath, err := LocateEngine(config.EngineDir)
	if err != nil {
		return nil, err
	}
	return &Runner{config: config, jarPath: jarPath, logger: logger}, nil
}

// LocateEngine searches for spmf.jar: the given directory first ("." when
// empty), then the directory of the running executable.
func LocateEngine(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	searched := make([]string, 0, 2)

	candidate := filepath.Join(dir, EngineJar)
	if fileExists(candidate) {
		return candidate, nil
	}
	searched = append(searched, candidate)

	if exe, err := os.Executable(); err == nil {
		candidate = filepath.Join(filepath.Dir(exe), EngineJar)
		if fileExists(candidate) {
			return candidate, nil
		}
		searched = append(searched, candidate)
	}

	return "", fmt.Errorf("%w (searched: %s); set the engine directory to the jar location",
		interfaces.ErrMissingEngine, strings.Join(searched, ", "))
}

// JarPath returns the resolved engine jar location.
func (r *Runner) JarPath() string {
	return r.jarPath
}

// Command builds the full argv for one invocation:
//
//	java [-Xmx<N>m] -jar <jar> run <algorithm> <input> <output> <extra args...>
//
// The memory flag is emitted only for a positive megabyte budget.
func (r *Runner) Command(inputPath, outputPath string) []string {
	java := r.config.JavaPath
	if java == "" {
		java = "java"
	}
	argv := []string{java}
	if r.config.MemoryMB > 0 {
		argv = append(argv, fmt.Sprintf("-Xmx%dm", r.config.MemoryMB))
	}
	argv = append(argv, "-jar", r.jarPath, "run", r.config.Algorithm, inputPath, outputPath)
	argv = append(argv, r.config.Arguments...)
	return argv
}

// Run invokes the engine synchronously and blocks until it terminates.
// A configured timeout kills a hung engine; a zero timeout blocks forever.
// On a nil error the output artifact exists and is ready for decoding.
// The RunResult is returned alongside the error so callers can inspect the
// captured output of failed runs.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) (*interfaces.RunResult, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	argv := r.Command(inputPath, outputPath)
	runID := uuid.New().String()
	r.logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"algorithm": r.config.Algorithm,
		"input":     inputPath,
		"output":    outputPath,
	}).Info("Invoking mining engine")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := &interfaces.RunResult{
		RunID:    runID,
		Command:  argv,
		Output:   string(output),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if len(result.Output) > 0 {
		r.logger.WithField("run_id", runID).Debug(result.Output)
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("engine exceeded timeout %s: %w", r.config.Timeout, err)
		}
		return result, &interfaces.EngineError{Stage: interfaces.StageExit, RunID: runID, Output: result.Output, Err: err}
	}
	if _, statErr := os.Stat(outputPath); statErr != nil {
		return result, &interfaces.EngineError{Stage: interfaces.StageArtifact, RunID: runID, Output: result.Output, Err: statErr}
	}
	if strings.Contains(result.Output, argErrorProbe) {
		return result, &interfaces.EngineError{Stage: interfaces.StageProbe, RunID: runID, Output: result.Output}
	}

	r.logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": result.Duration,
	}).Info("Engine run completed")
	return result, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
