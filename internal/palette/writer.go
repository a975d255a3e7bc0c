package palette

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// colormapFile is the on-disk YAML layout of a table:
//
//	default: [128, 128, 128]
//	classes:
//	  car: [255, 69, 0]
type colormapFile struct {
	Default rgb            `yaml:"default,omitempty"`
	Classes map[string]rgb `yaml:"classes"`
}

type rgb []int

// MarshalYAML keeps each color on one line.
func (c rgb) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range c {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return node, nil
}

func (c rgb) color() (color.RGBA, error) {
	if len(c) != 3 {
		return color.RGBA{}, fmt.Errorf("want [r, g, b], got %d components", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("component %d out of range 0-255", v)
		}
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}, nil
}

func fromColor(c color.RGBA) rgb {
	return rgb{int(c.R), int(c.G), int(c.B)}
}

// Load reads a YAML colormap. A missing "default" keeps Gray as the fallback.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}

	var f colormapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Table{}, fmt.Errorf("colormap %s: %w", path, err)
	}

	fallback := Gray
	if f.Default != nil {
		fallback, err = f.Default.color()
		if err != nil {
			return Table{}, fmt.Errorf("colormap %s: default: %w", path, err)
		}
	}

	colors := make(map[string]color.RGBA, len(f.Classes))
	for label, v := range f.Classes {
		c, err := v.color()
		if err != nil {
			return Table{}, fmt.Errorf("colormap %s: class %q: %w", path, label, err)
		}
		colors[label] = c
	}

	return New(colors, fallback), nil
}

// Encode writes t as YAML to w.
func (t Table) Encode(w io.Writer) error {
	f := colormapFile{
		Default: fromColor(t.fallback),
		Classes: make(map[string]rgb, len(t.colors)),
	}
	for _, label := range t.Labels() {
		f.Classes[label] = fromColor(t.colors[label])
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return err
	}
	return enc.Close()
}
