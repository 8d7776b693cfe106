// Package fasta reads protein FASTA text pasted into forms or passed to the CLI.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA entry. Sequence keeps the raw sequence lines joined
// together; cleaning is left to the analysis engine.
type Record struct {
	Header   string `json:"header" yaml:"header"`
	Sequence string `json:"sequence" yaml:"sequence"`
}

// Parse reads FASTA records from r. Lines starting with '>' open a new
// record, lines starting with ';' are comments. Sequence text that appears
// before any header becomes a record with an empty header.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var current *Record

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, ">"):
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{Header: strings.TrimSpace(trimmed[1:])}
		case strings.HasPrefix(trimmed, ";"):
			continue
		case trimmed == "":
			continue
		default:
			if current == nil {
				current = &Record{}
			}
			current.Sequence += trimmed
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}

	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(text string) ([]Record, error) {
	return Parse(strings.NewReader(text))
}

// StripHeaders drops header and comment lines and returns the remaining
// sequence text concatenated.
func StripHeaders(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		b.WriteString(trimmed)
	}
	return b.String()
}
