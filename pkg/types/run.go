// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RenderStatus indicates the outcome of rendering a single SVG file.
type RenderStatus string

const (
	RenderDone   RenderStatus = "rendered"
	RenderFailed RenderStatus = "failed"
)

// FileOutcome records how one input file fared during a batch run.
type FileOutcome struct {
	// Path is the input SVG path as discovered.
	Path string `json:"path" yaml:"path"`

	// Output is the derived PNG path. Set even on failure, since the
	// pre-existing output is deleted before rendering is attempted.
	Output string `json:"output" yaml:"output"`

	// Status is "rendered" or "failed".
	Status RenderStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is "failed".
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunRecord describes one batch render run: when it started, what it
// processed, and the per-file outcomes.
type RunRecord struct {
	// ID is a UUID assigned when the run is recorded. Empty until then.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// StartedAt is the UTC time the batch began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// InputDir is the directory tree that was scanned.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Rendered and Failed are the batch counters.
	Rendered int `json:"rendered" yaml:"rendered"`
	Failed   int `json:"failed" yaml:"failed"`

	// Files lists the per-file outcomes in processing order.
	Files []FileOutcome `json:"files,omitempty" yaml:"files,omitempty"`
}

// Total returns the total number of files processed in the run.
func (r RunRecord) Total() int {
	return r.Rendered + r.Failed
}
