// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes SVG files into fixed-size PNG images with
// pluggable backends.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/svgbatch/pkg/types"
)

// Rasterizer renders an SVG file into an in-memory image. Different
// backends implement this interface.
type Rasterizer interface {
	// Rasterize reads the SVG at svgPath and returns the rendered image.
	Rasterize(svgPath string) (image.Image, error)
}

// BatchResult holds the outcome of a batch render run.
type BatchResult struct {
	Rendered int
	Failed   int

	// Files holds the per-file outcomes in processing order.
	Files []types.FileOutcome
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Failed
}

// HasFailures reports whether any files failed rendering.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath derives the PNG path from svgPath by replacing its extension,
// keeping the same directory and stem.
func OutputPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
}

// RenderFile rasterizes a single SVG to its derived PNG path. Any
// pre-existing output file is deleted first; re-runs overwrite rather than
// error. Progress goes to out, failures to errw, and every error is
// converted into a failed outcome so the caller can continue with the
// remaining files.
func RenderFile(r Rasterizer, svgPath string, out, errw io.Writer) types.FileOutcome {
	pngPath := OutputPath(svgPath)
	outcome := types.FileOutcome{Path: svgPath, Output: pngPath}

	fail := func(err error) types.FileOutcome {
		fmt.Fprintf(errw, "failed: %s (%v)\n", svgPath, err)
		outcome.Status = types.RenderFailed
		outcome.Error = err.Error()
		return outcome
	}

	if err := os.Remove(pngPath); err != nil && !os.IsNotExist(err) {
		return fail(fmt.Errorf("removing stale output: %w", err))
	}

	img, err := r.Rasterize(svgPath)
	if err != nil {
		return fail(err)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return fail(fmt.Errorf("creating output: %w", err))
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fail(fmt.Errorf("encoding PNG: %w", err))
	}
	if err := f.Close(); err != nil {
		return fail(fmt.Errorf("writing output: %w", err))
	}

	fmt.Fprintf(out, "✓ rendered: %s\n", svgPath)
	outcome.Status = types.RenderDone
	return outcome
}

// RenderBatch processes paths through the rasterizer in the given order,
// printing per-file progress and a summary block, and returns the tally.
// No per-file failure stops the loop.
func RenderBatch(r Rasterizer, paths []string, out, errw io.Writer) BatchResult {
	result := BatchResult{Files: make([]types.FileOutcome, 0, len(paths))}

	for _, p := range paths {
		outcome := RenderFile(r, p, out, errw)
		result.Files = append(result.Files, outcome)
		switch outcome.Status {
		case types.RenderDone:
			result.Rendered++
		case types.RenderFailed:
			result.Failed++
		}
	}

	rule := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "Processing complete:")
	fmt.Fprintf(out, "  Successful: %d\n", result.Rendered)
	fmt.Fprintf(out, "  Failed: %d\n", result.Failed)
	fmt.Fprintf(out, "  Total: %d\n", result.Total())
	fmt.Fprintln(out, rule)

	return result
}
