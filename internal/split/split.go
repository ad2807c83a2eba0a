// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split writes each knowledge-base record to its own JSON file so
// records can be addressed individually by ID.
package split

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Kinds the splitter understands.
const (
	KindIngredients = "ingredients"
	KindDishes      = "dishes"
	KindBoth        = "both"
)

// Summary counts the outcome of one split run.
type Summary struct {
	Written int
	Skipped int
}

// HasFailures reports whether any record was skipped.
func (s Summary) HasFailures() bool {
	return s.Skipped > 0
}

// File reads a JSON array of records from inputPath and writes one
// <id>.json per record into outDir. Records without an "id" field are
// skipped and counted; the batch continues. A missing or malformed input
// file is fatal and reported with the offending path.
func File(inputPath, outDir string, w io.Writer) (Summary, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return Summary{}, fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating %s: %w", outDir, err)
	}

	fmt.Fprintf(w, "splitting %d records from %s\n", len(records), inputPath)

	var summary Summary
	for i, raw := range records {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &head); err != nil || head.ID == "" {
			fmt.Fprintf(w, "  skipped record %d: missing id\n", i+1)
			summary.Skipped++
			continue
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			fmt.Fprintf(w, "  skipped %s: %v\n", head.ID, err)
			summary.Skipped++
			continue
		}
		buf.WriteByte('\n')

		path := filepath.Join(outDir, head.ID+".json")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(w, "  skipped %s: %v\n", head.ID, err)
			summary.Skipped++
			continue
		}
		summary.Written++
	}

	fmt.Fprintf(w, "written: %d, skipped: %d -> %s\n", summary.Written, summary.Skipped, outDir)
	return summary, nil
}
