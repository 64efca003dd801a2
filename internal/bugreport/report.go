// Package bugreport models the triage reports that accompany each
// lesson and archives them in SQLite.
//
// Reports arrive as JSON files. Decoding is strict: unknown fields are
// rejected so fixture drift is caught at import time rather than
// silently ignored.
package bugreport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hxlabs/courseware/internal/catalog"
)

// RootCause classifies what actually broke.
type RootCause string

const (
	RootCauseTypo              RootCause = "typo"
	RootCauseStaleReference    RootCause = "stale-reference"
	RootCauseMissingTemplate   RootCause = "missing-template"
	RootCauseAttributeMismatch RootCause = "attribute-mismatch"
)

var rootCauses = map[RootCause]bool{
	RootCauseTypo:              true,
	RootCauseStaleReference:    true,
	RootCauseMissingTemplate:   true,
	RootCauseAttributeMismatch: true,
}

// Severity ranks how badly the lesson is broken.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var severities = map[Severity]bool{
	SeverityLow:    true,
	SeverityMedium: true,
	SeverityHigh:   true,
}

// Report is one triage record for a lesson defect.
type Report struct {
	ID          string    `json:"id"`
	Module      string    `json:"module"`
	Symptom     string    `json:"symptom"`
	RootCause   RootCause `json:"root_cause"`
	FailingTest string    `json:"failing_test"`
	Severity    Severity  `json:"severity"`
	Diagnosis   string    `json:"diagnosis"`
	Snippet     string    `json:"snippet,omitempty"`
}

// Decode parses one report from JSON, rejecting unknown fields.
func Decode(data []byte) (Report, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var r Report
	if err := dec.Decode(&r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}

// DecodeFile reads and parses a report fixture from disk.
func DecodeFile(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read report %s: %w", path, err)
	}
	r, err := Decode(data)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Validate checks field shape and that the report targets a lesson the
// catalog actually ships.
func (r Report) Validate(c *catalog.Catalog) error {
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("report id %q is not a uuid: %w", r.ID, err)
	}
	if !c.Has(r.Module) {
		return fmt.Errorf("report %s targets unknown module %q", r.ID, r.Module)
	}
	if strings.TrimSpace(r.Symptom) == "" {
		return fmt.Errorf("report %s has no symptom", r.ID)
	}
	if !rootCauses[r.RootCause] {
		return fmt.Errorf("report %s has unknown root cause %q", r.ID, r.RootCause)
	}
	if strings.TrimSpace(r.FailingTest) == "" {
		return fmt.Errorf("report %s names no failing test", r.ID)
	}
	if !severities[r.Severity] {
		return fmt.Errorf("report %s has unknown severity %q", r.ID, r.Severity)
	}
	if strings.TrimSpace(r.Diagnosis) == "" {
		return fmt.Errorf("report %s has no diagnosis", r.ID)
	}
	if r.Snippet != "" {
		if err := checkSnippet(r.Snippet); err != nil {
			return fmt.Errorf("report %s snippet: %w", r.ID, err)
		}
	}
	return nil
}

// checkSnippet parses an embedded HTML fragment and rejects markup the
// tokenizer cannot make sense of. The html package repairs most
// malformed input, so the check is for hard tokenizer errors and
// unbalanced raw tags.
func checkSnippet(snippet string) error {
	nodes, err := html.ParseFragment(strings.NewReader(snippet), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return fmt.Errorf("parse html fragment: %w", err)
	}
	if len(nodes) == 0 && strings.TrimSpace(snippet) != "" {
		return fmt.Errorf("html fragment produced no nodes")
	}
	return nil
}
