/*
File: decoder.go
Description: Output decoder for the SPMF wrapper. Parses the engine's
line-oriented output artifact into pattern records with a strict grammar:
one pattern per line, itemsets bounded by -1 sentinels, then support and
sequence-id annotations. Any malformed line aborts the whole decode.
*/

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/hodlen/spmf-go/pkg/interfaces"
)

// outputLine is the per-line grammar:
//
//	<pattern-body> ["-2 "]? "#SUP: " <support> " #SID: " <sequence ids>
//
// The lazy body group stops before the optional trailing -2 marker.
var outputLine = regexp.MustCompile(`^(.+?)(?:-2 )?#SUP: (\d+) #SID: (.+)$`)

// Decoder parses engine output artifacts into pattern slices.
type Decoder struct{}

// NewDecoder creates a new output decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeFile reads the output artifact at path and decodes it in one batch.
// An empty file yields an empty pattern slice, not an error.
func (d *Decoder) DecodeFile(path string) ([]interfaces.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output artifact: %w", err)
	}
	defer f.Close()
	return d.Decode(f)
}

// Decode parses the output stream line by line, in order. The first line that
// does not match the grammar fails the whole decode with a ParseError; patterns
// decoded from earlier lines are discarded.
func (d *Decoder) Decode(r io.Reader) ([]interfaces.Pattern, error) {
	patterns := make([]interfaces.Pattern, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		match := outputLine.FindStringSubmatch(line)
		if match == nil {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line}
		}

		elements, err := parseElements(match[1])
		if err != nil {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line}
		}
		support, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line}
		}
		sequenceIDs, err := parseSequenceIDs(match[3])
		if err != nil {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line}
		}

		patterns = append(patterns, interfaces.Pattern{
			Elements:    elements,
			Support:     support,
			SequenceIDs: sequenceIDs,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read output artifact: %w", err)
	}
	return patterns, nil
}

// parseElements tokenizes the pattern body, drops the -1 itemset boundary
// sentinels and parses the remaining tokens as items, in order. Itemset
// structure is flattened into one ordered item list.
func parseElements(body string) ([]int, error) {
	tokens := strings.Fields(body)
	elements := make([]int, 0, len(tokens))
	for _, token := range tokens {
		if token == ItemsetEnd {
			continue
		}
		item, err := strconv.Atoi(token)
		if err != nil {
			return nil, err
		}
		elements = append(elements, item)
	}
	return elements, nil
}

// parseSequenceIDs parses the space-separated sequence id list, preserving
// order and duplicates.
func parseSequenceIDs(list string) ([]int, error) {
	tokens := strings.Fields(list)
	ids := make([]int, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.Atoi(token)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
