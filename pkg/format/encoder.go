/*
File: encoder.go
Description: Input encoder for the SPMF wrapper. Transforms caller-supplied
sequence collections into the line-oriented text format consumed by the engine
and materializes them as uniquely named temporary artifacts with the correct
file extension.
*/

package format

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hodlen/spmf-go/pkg/interfaces"
)

// Sentinel tokens of the engine input format.
const (
	ItemsetEnd  = "-1" // Ends an itemset within a sequence
	SequenceEnd = "-2" // Ends a sequence line

	textSeparator = ". "
)

// Encoder materializes datasets as engine input artifacts.
type Encoder struct {
	tempDir string
}

// NewEncoder creates an encoder writing artifacts under tempDir.
// An empty tempDir uses the OS default temporary directory.
func NewEncoder(tempDir string) *Encoder {
	return &Encoder{tempDir: tempDir}
}

// Materialize resolves the dataset union and returns the path of the input
// artifact. A pre-existing file path is passed through untouched; everything
// else is encoded and written to a new uniquely named temp file. The artifact
// is never cleaned up here: its lifetime transfers to the caller and the engine.
func (e *Encoder) Materialize(ds *interfaces.Dataset) (string, error) {
	if ds == nil {
		return "", interfaces.ErrInvalidInput
	}
	switch {
	case ds.FilePath != "":
		return ds.FilePath, nil
	case ds.Raw != "":
		return e.writeArtifact(ds.Raw, ds.Mode.Extension())
	case ds.Sequences != nil:
		return e.writeArtifact(EncodeSequences(ds.Sequences), interfaces.InputModeNormal.Extension())
	case ds.Texts != nil:
		return e.writeArtifact(EncodeTexts(ds.Texts), interfaces.InputModeText.Extension())
	}
	return "", interfaces.ErrInvalidInput
}

// EncodeSequences renders structured sequences in normal mode: items space
// separated, each itemset closed by -1, each sequence closed by -2 and a newline.
func EncodeSequences(sequences [][][]int) string {
	var b strings.Builder
	for _, sequence := range sequences {
		for _, itemset := range sequence {
			for _, item := range itemset {
				b.WriteString(strconv.Itoa(item))
				b.WriteByte(' ')
			}
			b.WriteString(ItemsetEnd)
			b.WriteByte(' ')
		}
		b.WriteString(SequenceEnd)
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeTexts renders text-mode sequences as one stream, each sequence
// followed by the literal ". " separator. No per-sequence line breaks.
func EncodeTexts(texts []string) string {
	var b strings.Builder
	for _, text := range texts {
		b.WriteString(text)
		b.WriteString(textSeparator)
	}
	return b.String()
}

// writeArtifact creates a uniquely named file carrying the required extension
// and writes the encoded content to it. The *-pattern suffix makes the unique
// name and the extension a single atomic creation, so no rename is needed.
func (e *Encoder) writeArtifact(content, extension string) (string, error) {
	f, err := os.CreateTemp(e.tempDir, "spmf-input-*"+extension)
	if err != nil {
		return "", fmt.Errorf("failed to create input artifact: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write input artifact %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close input artifact %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}
