/*
File: export.go
Description: Tabular and serialized export of decoded pattern sets. Writes
semicolon-delimited CSV with a header row, rendering list columns either as
comma-joined strings or as JSON lists, and persists the whole result set as JSON.
*/

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hodlen/spmf-go/pkg/interfaces"
)

// CSVOptions controls how list-valued columns are rendered.
type CSVOptions struct {
	// ListsAsJSON renders the pattern and sequence-id columns as JSON lists
	// (e.g. "[1,2,3]") instead of comma-joined strings (e.g. "1,2,3").
	ListsAsJSON bool
}

var csvHeader = []string{"pattern", "sup", "sequence_ids"}

// WriteCSV writes the pattern set as semicolon-delimited rows with a header,
// read-only traversing the patterns in order.
func WriteCSV(w io.Writer, patterns []interfaces.Pattern, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range patterns {
		pattern, err := renderInts(p.Elements, opts)
		if err != nil {
			return err
		}
		ids, err := renderInts(p.SequenceIDs, opts)
		if err != nil {
			return err
		}
		row := []string{pattern, strconv.Itoa(p.Support), ids}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the pattern set to a CSV file at path.
func SaveCSV(path string, patterns []interfaces.Pattern, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := WriteCSV(f, patterns, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveJSON persists the whole parsed result set as indented JSON.
func SaveJSON(path string, patterns []interfaces.Pattern) error {
	data, err := json.MarshalIndent(patterns, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal patterns: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

// renderInts renders an int list column per the CSV options.
func renderInts(values []int, opts CSVOptions) (string, error) {
	if opts.ListsAsJSON {
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to render list column: %w", err)
		}
		return string(data), nil
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ","), nil
}
