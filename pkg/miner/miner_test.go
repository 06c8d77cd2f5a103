/*
File: miner_test.go
Description: Unit tests for the pipeline facade. Covers configuration
validation, construction-time jar discovery, input resolution failures, and
the full encode-invoke-decode pipeline against a stub engine runner.
*/

package miner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hodlen/spmf-go/pkg/engine"
	"github.com/hodlen/spmf-go/pkg/interfaces"
	"github.com/hodlen/spmf-go/pkg/miner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngineDir creates a directory holding a placeholder spmf.jar so that
// construction-time discovery succeeds.
func newEngineDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, engine.EngineJar), []byte("jar"), 0o644))
	return dir
}

// stubRunner stands in for the engine: it writes canned output to the output
// artifact and records the input path it was handed.
type stubRunner struct {
	outputContent string
	err           error
	inputPath     string
}

func (s *stubRunner) Run(ctx context.Context, inputPath, outputPath string) (*interfaces.RunResult, error) {
	s.inputPath = inputPath
	if s.err != nil {
		return &interfaces.RunResult{RunID: "stub"}, s.err
	}
	if err := os.WriteFile(outputPath, []byte(s.outputContent), 0o644); err != nil {
		return nil, err
	}
	return &interfaces.RunResult{RunID: "stub", ExitCode: 0}, nil
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := miner.New(nil, nil)
	assert.Error(t, err)

	_, err = miner.New(&interfaces.MinerConfig{OutputPath: "out.txt"}, nil)
	assert.ErrorContains(t, err, "algorithm")

	_, err = miner.New(&interfaces.MinerConfig{Algorithm: "PrefixSpan"}, nil)
	assert.ErrorContains(t, err, "output path")
}

func TestNewMissingEngine(t *testing.T) {
	_, err := miner.New(&interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  t.TempDir(),
		OutputPath: "out.txt",
	}, nil)
	assert.ErrorIs(t, err, interfaces.ErrMissingEngine)
}

func TestMinePipeline(t *testing.T) {
	workDir := t.TempDir()
	config := &interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  newEngineDir(t),
		OutputPath: filepath.Join(workDir, "out.txt"),
		TempDir:    workDir,
	}

	m, err := miner.New(config, nil)
	require.NoError(t, err)

	stub := &stubRunner{outputContent: "1 2 -1 3 -1 #SUP: 2 #SID: 0 1\n1 -1 #SUP: 1 #SID: 0\n"}
	m.SetRunner(stub)

	patterns, err := m.Mine(context.Background(), &interfaces.Dataset{
		Sequences: [][][]int{{{1, 2}, {3}}, {{1}, {3}}},
	})
	require.NoError(t, err)

	// The encoder materialized a fresh artifact and handed it to the runner.
	require.NotEmpty(t, stub.inputPath)
	content, err := os.ReadFile(stub.inputPath)
	require.NoError(t, err)
	assert.Equal(t, "1 2 -1 3 -1 -2\n1 -1 3 -1 -2\n", string(content))

	require.Len(t, patterns, 2)
	assert.Equal(t, interfaces.Pattern{Elements: []int{1, 2, 3}, Support: 2, SequenceIDs: []int{0, 1}}, patterns[0])
	assert.Equal(t, interfaces.Pattern{Elements: []int{1}, Support: 1, SequenceIDs: []int{0}}, patterns[1])
}

func TestMineInvalidDataset(t *testing.T) {
	config := &interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  newEngineDir(t),
		OutputPath: filepath.Join(t.TempDir(), "out.txt"),
	}
	m, err := miner.New(config, nil)
	require.NoError(t, err)

	_, err = m.Mine(context.Background(), &interfaces.Dataset{})
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestMineEngineFailurePropagates(t *testing.T) {
	workDir := t.TempDir()
	config := &interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  newEngineDir(t),
		OutputPath: filepath.Join(workDir, "out.txt"),
		TempDir:    workDir,
	}
	m, err := miner.New(config, nil)
	require.NoError(t, err)

	engineErr := &interfaces.EngineError{Stage: interfaces.StageProbe, RunID: "stub"}
	m.SetRunner(&stubRunner{err: engineErr})

	_, err = m.Mine(context.Background(), &interfaces.Dataset{Sequences: [][][]int{{{1}}}})
	var got *interfaces.EngineError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, interfaces.StageProbe, got.Stage)
}

func TestMineUnparsableOutputFailsWhole(t *testing.T) {
	workDir := t.TempDir()
	config := &interfaces.MinerConfig{
		Algorithm:  "PrefixSpan",
		EngineDir:  newEngineDir(t),
		OutputPath: filepath.Join(workDir, "out.txt"),
		TempDir:    workDir,
	}
	m, err := miner.New(config, nil)
	require.NoError(t, err)

	m.SetRunner(&stubRunner{outputContent: "1 -1 #SUP: 1 #SID: 0\ngarbage line without sentinel\n"})

	patterns, err := m.Mine(context.Background(), &interfaces.Dataset{Sequences: [][][]int{{{1}}}})
	assert.Nil(t, patterns)
	var parseErr *interfaces.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
