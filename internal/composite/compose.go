package composite

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ivlev/polymask/internal/annotation"
	"github.com/ivlev/polymask/internal/palette"
	"github.com/ivlev/polymask/internal/raster"
)

// ErrDegeneratePolygon is returned in strict mode for polygons with fewer than 3 points.
var ErrDegeneratePolygon = errors.New("polygon has fewer than 3 points")

// Options controls how Compose treats questionable input.
type Options struct {
	// Strict turns degenerate polygons into an error instead of an empty region.
	Strict bool
}

// Summary describes what Compose did with the objects of a document.
type Summary struct {
	Objects    int // objects in the document
	Painted    int // objects rasterized and composited
	Skipped    int // objects with an empty label
	Degenerate int // painted objects whose polygon has fewer than 3 points
	Fallback   int // painted objects whose label is not in the table
	Pixels     int // pixel writes, counting overdraw
}

// Compose paints every labelled object of doc onto a fresh white canvas, in
// document order, so later objects win where regions overlap.
func Compose(doc *annotation.Document, table palette.Table, opts Options) (*image.RGBA, Summary, error) {
	canvas := NewCanvas(doc.ImgWidth, doc.ImgHeight)
	sum := Summary{Objects: len(doc.Objects)}

	for i, obj := range doc.Objects {
		if obj.Label == "" {
			sum.Skipped++
			continue
		}

		if obj.Degenerate() {
			if opts.Strict {
				return nil, sum, fmt.Errorf("object %d (%q): %w", i, obj.Label, ErrDegeneratePolygon)
			}
			log.Printf("[!] Object %d (%q): polygon has %d points, nothing to fill", i, obj.Label, len(obj.Polygon))
			sum.Degenerate++
		}

		if !table.Known(obj.Label) {
			sum.Fallback++
		}

		mask := raster.Rasterize(obj.Polygon, doc.ImgHeight, doc.ImgWidth)
		sum.Pixels += canvas.Paint(mask, table.Lookup(obj.Label))
		sum.Painted++
	}

	return canvas.Image(), sum, nil
}
