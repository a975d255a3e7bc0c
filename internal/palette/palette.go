package palette

import (
	"image/color"
	"sort"
)

// Gray is the color given to labels that are not in a table.
var Gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Table maps class labels to mask colors. A Table is immutable once built;
// the zero value maps every label to black.
type Table struct {
	colors   map[string]color.RGBA
	fallback color.RGBA
}

// New builds a table from colors. The map is copied, so later changes to it
// do not affect the table. Alpha is forced to opaque.
func New(colors map[string]color.RGBA, fallback color.RGBA) Table {
	t := Table{
		colors:   make(map[string]color.RGBA, len(colors)),
		fallback: opaque(fallback),
	}
	for label, c := range colors {
		t.colors[label] = opaque(c)
	}
	return t
}

// Default returns the built-in road scene table with gray as the fallback.
func Default() Table {
	return New(map[string]color.RGBA{
		"obs-str-bar-fallback":  {R: 255, G: 0, B: 0},     // red
		"vegetation":            {R: 0, G: 255, B: 0},     // green
		"drivable fallback":     {R: 0, G: 128, B: 255},   // light blue
		"pole":                  {R: 0, G: 255, B: 255},   // cyan
		"motorcycle":            {R: 0, G: 0, B: 255},     // blue
		"curb":                  {R: 255, G: 255, B: 0},   // yellow
		"sky":                   {R: 255, G: 255, B: 255}, // white
		"building":              {R: 128, G: 128, B: 0},   // olive
		"rider":                 {R: 128, G: 0, B: 128},   // purple
		"animal":                {R: 255, G: 128, B: 0},   // orange
		"road":                  {R: 255, G: 165, B: 0},   // light orange
		"billboard":             {R: 128, G: 0, B: 0},     // maroon
		"car":                   {R: 255, G: 69, B: 0},    // red-orange
		"non-drivable fallback": {R: 128, G: 128, B: 128}, // gray
		"person":                {R: 139, G: 69, B: 19},   // saddle brown
		"truck":                 {R: 0, G: 0, B: 128},     // navy
	}, Gray)
}

// Lookup returns the color of label, or the fallback color if it is unknown.
func (t Table) Lookup(label string) color.RGBA {
	if c, ok := t.colors[label]; ok {
		return c
	}
	return t.fallback
}

// Known reports whether label has its own entry.
func (t Table) Known(label string) bool {
	_, ok := t.colors[label]
	return ok
}

// Fallback returns the color used for unknown labels.
func (t Table) Fallback() color.RGBA {
	return t.fallback
}

// Labels returns the labels of the table in sorted order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t.colors))
	for label := range t.colors {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Len returns the number of labels in the table.
func (t Table) Len() int {
	return len(t.colors)
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
