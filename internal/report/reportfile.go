// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// File is the serializable form of a triage report, for runs that want the
// records rather than the rendered text.
type File struct {
	Summary Summary             `json:"summary" yaml:"summary"`
	Matched []types.MatchResult `json:"matched" yaml:"matched"`
	Other   []types.MatchResult `json:"other" yaml:"other"`
}

// Summary holds the counts and a timestamp for the run.
type Summary struct {
	Total     int       `json:"total" yaml:"total"`
	Matched   int       `json:"matched" yaml:"matched"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewFile assembles a report file from the classified articles.
func NewFile(matched, unmatched []types.MatchResult) File {
	return File{
		Summary: Summary{
			Total:     len(matched) + len(unmatched),
			Matched:   len(matched),
			Timestamp: time.Now(),
		},
		Matched: matched,
		Other:   unmatched,
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, f File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, f File) error {
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
