// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes batch run records to YAML files.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svgbatch/pkg/types"
)

// document is the on-disk report layout: the run plus a generation stamp.
type document struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Run         types.RunRecord `yaml:"run"`
}

// Write serializes run as YAML to path, overwriting any existing file.
func Write(path string, run types.RunRecord) error {
	doc := document{
		GeneratedAt: time.Now().UTC(),
		Run:         run,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report written by Write and returns the embedded run.
func Read(path string) (types.RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RunRecord{}, fmt.Errorf("reading report %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.RunRecord{}, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return doc.Run, nil
}
