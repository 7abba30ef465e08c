// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
  <rect x="1" y="1" width="8" height="8" fill="#336699"/>
</svg>`

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.svg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewOksvgRasterizer_RejectsEmptyBox(t *testing.T) {
	for _, dims := range [][2]int{{0, 200}, {200, 0}, {-1, -1}} {
		if _, err := NewOksvgRasterizer(dims[0], dims[1]); err == nil {
			t.Errorf("NewOksvgRasterizer(%d, %d) should fail", dims[0], dims[1])
		}
	}
}

func TestOksvgRasterizer_FixedBox(t *testing.T) {
	r, err := NewOksvgRasterizer(200, 200)
	if err != nil {
		t.Fatal(err)
	}

	img, err := r.Rasterize(writeSVG(t, sampleSVG))
	if err != nil {
		t.Fatalf("rasterizing sample: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 200 {
		t.Errorf("image bounds = %dx%d, want 200x200", bounds.Dx(), bounds.Dy())
	}
}

func TestOksvgRasterizer_MalformedSVG(t *testing.T) {
	r, err := NewOksvgRasterizer(200, 200)
	if err != nil {
		t.Fatal(err)
	}

	// The XML decoder reads top-level text as character data and reaches
	// EOF without complaint, so parsing alone cannot be trusted to reject
	// these; Rasterize must still fail them.
	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "this is not an SVG document"},
		{"empty file", ""},
		{"truncated markup", "<svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSVG(t, tt.content)
			img, err := r.Rasterize(path)
			if err == nil {
				t.Fatalf("expected an error, got image %v", img.Bounds())
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q should name the input file", err)
			}
		})
	}
}

func TestOksvgRasterizer_MissingFile(t *testing.T) {
	r, err := NewOksvgRasterizer(200, 200)
	if err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(t.TempDir(), "gone.svg")
	if _, err := r.Rasterize(missing); err == nil {
		t.Error("expected an error for a missing file")
	}
}
