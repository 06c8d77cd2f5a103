/*
File: errors.go
Description: Error taxonomy for the SPMF wrapper. Sentinel errors for
construction-time failures and typed errors carrying invocation and parse
context. Every failure is surfaced synchronously; there are no retries.
*/

package interfaces

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEngine means spmf.jar could not be located at any configured
	// or fallback location. Raised at construction time before any work begins.
	ErrMissingEngine = errors.New("spmf.jar not found")

	// ErrInvalidInput means the caller-supplied Dataset resolves to nothing:
	// no file path, no raw text, no sequences, no texts. Raised before any file I/O.
	ErrInvalidInput = errors.New("no usable input: dataset must carry a file path, raw text, sequences, or texts")
)

// Engine failure stages, in classification priority order.
const (
	StageExit     = "exit"     // Process terminated with a non-zero status
	StageArtifact = "artifact" // Process succeeded but the output artifact is missing
	StageProbe    = "probe"    // Captured output contains the known fatal exception text
)

// EngineError reports a failed engine invocation. Stage records which signal
// classified the failure. The captured combined output is carried along so the
// caller can log or inspect the engine's own diagnostics.
type EngineError struct {
	Stage  string
	RunID  string
	Output string
	Err    error
}

func (e *EngineError) Error() string {
	switch e.Stage {
	case StageArtifact:
		return fmt.Sprintf("engine run %s produced no output artifact: %v", e.RunID, e.Err)
	case StageProbe:
		return fmt.Sprintf("engine run %s reported java.lang.IllegalArgumentException in its output", e.RunID)
	default:
		return fmt.Sprintf("engine run %s failed: %v", e.RunID, e.Err)
	}
}

func (e *EngineError) Unwrap() error { return e.Err }

// ParseError reports the first output line that does not match the expected
// grammar. The whole decode is aborted; no partial result is returned.
type ParseError struct {
	Line int    // 1-based line number in the output artifact
	Text string // The offending line, whitespace-trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse engine output line %d: %q", e.Line, e.Text)
}
