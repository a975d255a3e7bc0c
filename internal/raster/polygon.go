package raster

import (
	"math"
	"sort"

	"github.com/ivlev/polymask/internal/annotation"
)

// Rasterize fills polygon into a height x width mask. Points are (x, y) =
// (column, row). A pixel is set when its center (col+0.5, row+0.5) is inside
// the polygon under the even-odd rule, so a rectangle with corners (x0, y0)
// and (x1, y1) covers exactly the half-open columns [x0, x1) and rows
// [y0, y1) whatever the raster size. Vertices outside the raster are allowed.
// Polygons with fewer than 3 points or no area produce an empty mask.
func Rasterize(polygon []annotation.Point, height, width int) *Mask {
	mask := NewMask(height, width)
	if height <= 0 || width <= 0 || len(polygon) < 3 {
		return mask
	}

	minY, maxY := polygon[0].Y, polygon[0].Y
	for _, p := range polygon[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	firstRow := ceilClamp(minY-0.5, 0, height)
	lastRow := ceilClamp(maxY-0.5, 0, height) - 1

	xs := make([]float64, 0, len(polygon))
	for row := firstRow; row <= lastRow; row++ {
		xs = crossings(polygon, float64(row)+0.5, xs[:0])
		sort.Float64s(xs)

		line := mask.bits[row*width : (row+1)*width]
		for k := 0; k+1 < len(xs); k += 2 {
			// Centers c+0.5 with xs[k] <= c+0.5 < xs[k+1].
			from := ceilClamp(xs[k]-0.5, 0, width)
			to := ceilClamp(xs[k+1]-0.5, 0, width)
			for col := from; col < to; col++ {
				line[col] = true
			}
		}
	}

	return mask
}

// crossings appends the x positions where the polygon edges cross the
// horizontal line at y. An edge counts when exactly one endpoint is above y,
// the same rule as a ray casting point-in-polygon test.
func crossings(polygon []annotation.Point, y float64, xs []float64) []float64 {
	n := len(polygon)
	for i := 0; i < n; i++ {
		pi, pj := polygon[i], polygon[(i+1)%n]
		if (pi.Y > y) == (pj.Y > y) {
			continue
		}
		xs = append(xs, pi.X+(y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y))
	}
	return xs
}

// ceilClamp returns ceil(v) limited to [lo, hi].
func ceilClamp(v float64, lo, hi int) int {
	c := math.Ceil(v)
	if c < float64(lo) {
		return lo
	}
	if c > float64(hi) {
		return hi
	}
	return int(c)
}
