package raster

import "image"

// Mask is a binary raster of Height rows by Width columns.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask creates an empty mask of the given size.
func NewMask(height, width int) *Mask {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, height*width),
	}
}

func (m *Mask) inside(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// At reports whether the pixel at (row, col) is set. Out of range is false.
func (m *Mask) At(row, col int) bool {
	if !m.inside(row, col) {
		return false
	}
	return m.bits[row*m.Width+col]
}

// Set changes a single pixel. Out of range writes are ignored.
func (m *Mask) Set(row, col int, v bool) {
	if !m.inside(row, col) {
		return
	}
	m.bits[row*m.Width+col] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle, in x/y image coordinates, that
// contains every set pixel. An empty mask yields an empty rectangle.
func (m *Mask) Bounds() image.Rectangle {
	minX, minY := m.Width, m.Height
	maxX, maxY := -1, -1

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if !m.bits[row*m.Width+col] {
				continue
			}
			if col < minX {
				minX = col
			}
			if col > maxX {
				maxX = col
			}
			if row < minY {
				minY = row
			}
			if row > maxY {
				maxY = row
			}
		}
	}

	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
