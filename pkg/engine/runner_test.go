/*
File: runner_test.go
Description: Unit tests for the engine runner. Covers jar discovery, command
line construction with and without the JVM memory flag, and failure
classification (exit status, missing output artifact, exception-text probe)
using a stub engine script in place of the Java runtime.
*/

package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/hodlen/spmf-go/pkg/engine"
	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngineDir creates a directory holding a placeholder spmf.jar.
func newEngineDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, engine.EngineJar), []byte("jar"), 0o644))
	return dir
}

// writeStubEngine writes an executable shell script standing in for the Java
// runtime. The runner invokes it as: java -jar <jar> run <algo> <in> <out>,
// so $6 is the output artifact path.
func writeStubEngine(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engine scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-java")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestLocateEngine(t *testing.T) {
	dir := newEngineDir(t)
	path, err := engine.LocateEngine(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, engine.EngineJar), path)
}

func TestLocateEngineMissing(t *testing.T) {
	_, err := engine.LocateEngine(t.TempDir())
	assert.ErrorIs(t, err, interfaces.ErrMissingEngine)
}

func TestNewRunnerMissingJar(t *testing.T) {
	_, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  t.TempDir(),
		OutputPath: "out.txt",
	}, nil)
	assert.ErrorIs(t, err, interfaces.ErrMissingEngine)
}

func TestCommandConstruction(t *testing.T) {
	dir := newEngineDir(t)
	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		Arguments: []string{"0.5", "true"},
	}, nil)
	require.NoError(t, err)

	argv := runner.Command("in.txt", "out.txt")
	assert.Equal(t, []string{
		"java", "-jar", runner.JarPath(), "run", "PrefixSpan", "in.txt", "out.txt", "0.5", "true",
	}, argv)
}

func TestCommandMemoryFlag(t *testing.T) {
	dir := newEngineDir(t)
	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "SPADE",
		EngineDir: dir,
		MemoryMB:  512,
	}, nil)
	require.NoError(t, err)

	argv := runner.Command("in.txt", "out.txt")
	assert.Equal(t, "-Xmx512m", argv[1])
}

func TestRunSuccess(t *testing.T) {
	dir := newEngineDir(t)
	java := writeStubEngine(t, "echo mining done\nprintf '1 -1 #SUP: 1 #SID: 0\\n' > \"$6\"\n")
	outputPath := filepath.Join(t.TempDir(), "out.txt")

	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		JavaPath:  java,
	}, nil)
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), "in.txt", outputPath)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Output, "mining done")
	assert.NotEmpty(t, result.RunID)
	assert.FileExists(t, outputPath)
}

func TestRunNonZeroExit(t *testing.T) {
	dir := newEngineDir(t)
	java := writeStubEngine(t, "exit 3\n")

	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		JavaPath:  java,
	}, nil)
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), "in.txt", filepath.Join(t.TempDir(), "out.txt"))
	var engineErr *interfaces.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, interfaces.StageExit, engineErr.Stage)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunMissingOutputArtifact(t *testing.T) {
	dir := newEngineDir(t)
	java := writeStubEngine(t, "echo ok\n")

	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		JavaPath:  java,
	}, nil)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), "in.txt", filepath.Join(t.TempDir(), "never-written.txt"))
	var engineErr *interfaces.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, interfaces.StageArtifact, engineErr.Stage)
}

// The engine is known to report fatal misconfiguration on stdout with a zero
// exit status; the text probe must still classify it as a failed run.
func TestRunArgumentErrorProbe(t *testing.T) {
	dir := newEngineDir(t)
	java := writeStubEngine(t, "echo java.lang.IllegalArgumentException: bad arg\ntouch \"$6\"\n")
	outputPath := filepath.Join(t.TempDir(), "out.txt")

	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		JavaPath:  java,
	}, nil)
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), "in.txt", outputPath)
	var engineErr *interfaces.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, interfaces.StageProbe, engineErr.Stage)
	assert.Equal(t, 0, result.ExitCode)
}

func TestRunTimeout(t *testing.T) {
	dir := newEngineDir(t)
	java := writeStubEngine(t, "sleep 10\n")

	runner, err := engine.NewRunner(&interfaces.MinerConfig{
		Algorithm: "PrefixSpan",
		EngineDir: dir,
		JavaPath:  java,
		Timeout:   100 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = runner.Run(context.Background(), "in.txt", filepath.Join(t.TempDir(), "out.txt"))
	var engineErr *interfaces.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, interfaces.StageExit, engineErr.Stage)
	assert.Less(t, time.Since(start), 5*time.Second)
}
