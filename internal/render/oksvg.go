// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// OksvgRasterizer renders SVG files with the pure-Go oksvg/rasterx stack,
// stretching each icon into a fixed Width×Height pixel box. The SVG's own
// aspect ratio is not preserved; the output dimensions are.
type OksvgRasterizer struct {
	Width  int
	Height int
}

// NewOksvgRasterizer returns a rasterizer targeting a width×height box.
func NewOksvgRasterizer(width, height int) (*OksvgRasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("output box must have positive dimensions, got %dx%d", width, height)
	}
	return &OksvgRasterizer{Width: width, Height: height}, nil
}

// Rasterize parses the SVG at svgPath and renders it into the output box.
// Format support and parse errors are the library's; they surface here as
// ordinary errors wrapped with the file path.
func (o *OksvgRasterizer) Rasterize(svgPath string) (image.Image, error) {
	icon, err := oksvg.ReadIcon(svgPath)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG %s: %w", svgPath, err)
	}
	// The XML decoder accepts top-level text as character data, so a file
	// with no <svg> root still parses; it just yields a zero viewbox.
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("parsing SVG %s: no <svg> root element", svgPath)
	}

	icon.SetTarget(0, 0, float64(o.Width), float64(o.Height))

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	scanner := rasterx.NewScannerGV(o.Width, o.Height, img, img.Bounds())
	raster := rasterx.NewDasher(o.Width, o.Height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
