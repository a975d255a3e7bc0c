package annotation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxPixels bounds imgWidth*imgHeight so a mask always fits in memory.
const MaxPixels = 1 << 28

// Point is a polygon vertex in pixel coordinates: X is the column, Y the row.
type Point struct {
	X float64
	Y float64
}

// Object is a single labelled polygon.
type Object struct {
	Label   string
	Polygon []Point
}

// Degenerate reports whether the polygon cannot enclose any area.
func (o Object) Degenerate() bool {
	return len(o.Polygon) < 3
}

// Document is the parsed annotation file of one image.
type Document struct {
	ImgHeight int
	ImgWidth  int
	Objects   []Object
}

type rawDocument struct {
	ImgHeight *int         `json:"imgHeight"`
	ImgWidth  *int         `json:"imgWidth"`
	Objects   *[]rawObject `json:"objects"`
}

type rawObject struct {
	Label   *string       `json:"label"`
	Polygon *[][]*float64 `json:"polygon"`
}

// Load reads and validates the annotation file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		var pe *ParseError
		var se *SchemaError
		switch {
		case errors.As(err, &pe):
			pe.Path = path
		case errors.As(err, &se):
			se.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses an annotation document from r.
func Decode(r io.Reader) (*Document, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaError{Field: typeErr.Field, Index: -1, Msg: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value)}
		}
		return nil, &ParseError{Err: err}
	}
	return raw.document()
}

func (raw *rawDocument) document() (*Document, error) {
	if raw.ImgHeight == nil {
		return nil, missing("imgHeight", -1)
	}
	if raw.ImgWidth == nil {
		return nil, missing("imgWidth", -1)
	}
	if raw.Objects == nil {
		return nil, missing("objects", -1)
	}
	if *raw.ImgHeight <= 0 || *raw.ImgWidth <= 0 {
		return nil, &SchemaError{
			Field: "imgHeight/imgWidth",
			Index: -1,
			Msg:   fmt.Sprintf("image size must be positive, got %dx%d", *raw.ImgWidth, *raw.ImgHeight),
		}
	}

	if int64(*raw.ImgHeight)*int64(*raw.ImgWidth) > MaxPixels {
		return nil, &SchemaError{
			Field: "imgHeight/imgWidth",
			Index: -1,
			Msg:   fmt.Sprintf("image size %dx%d exceeds %d pixels", *raw.ImgWidth, *raw.ImgHeight, MaxPixels),
		}
	}

	doc := &Document{
		ImgHeight: *raw.ImgHeight,
		ImgWidth:  *raw.ImgWidth,
		Objects:   make([]Object, 0, len(*raw.Objects)),
	}

	for i, ro := range *raw.Objects {
		if ro.Label == nil {
			return nil, missing("label", i)
		}
		if ro.Polygon == nil {
			return nil, missing("polygon", i)
		}

		points := make([]Point, 0, len(*ro.Polygon))
		for j, pair := range *ro.Polygon {
			if len(pair) != 2 {
				return nil, &SchemaError{
					Field: "polygon",
					Index: i,
					Msg:   fmt.Sprintf("point %d has %d coordinates, want [x, y]", j, len(pair)),
				}
			}
			if pair[0] == nil || pair[1] == nil {
				return nil, &SchemaError{
					Field: "polygon",
					Index: i,
					Msg:   fmt.Sprintf("point %d has a null coordinate", j),
				}
			}
			points = append(points, Point{X: *pair[0], Y: *pair[1]})
		}

		doc.Objects = append(doc.Objects, Object{Label: *ro.Label, Polygon: points})
	}

	return doc, nil
}
