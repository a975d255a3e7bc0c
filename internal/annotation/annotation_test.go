package annotation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	input := `{
		"imgHeight": 100,
		"imgWidth": 200,
		"objects": [
			{"label": "car", "polygon": [[10, 10], [50, 10], [50, 50], [10, 50]]},
			{"label": "", "polygon": [[1.5, 2.5], [3, 4]]}
		]
	}`

	doc, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.ImgHeight != 100 || doc.ImgWidth != 200 {
		t.Errorf("Expected 200x100, got %dx%d", doc.ImgWidth, doc.ImgHeight)
	}
	if len(doc.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(doc.Objects))
	}

	car := doc.Objects[0]
	if car.Label != "car" || len(car.Polygon) != 4 {
		t.Errorf("Unexpected first object: %+v", car)
	}
	if car.Polygon[1] != (Point{X: 50, Y: 10}) {
		t.Errorf("Expected point (50,10), got %+v", car.Polygon[1])
	}
	if car.Degenerate() {
		t.Error("Square should not be degenerate")
	}

	second := doc.Objects[1]
	if second.Polygon[0] != (Point{X: 1.5, Y: 2.5}) {
		t.Errorf("Fractional coordinates lost: %+v", second.Polygon[0])
	}
	if !second.Degenerate() {
		t.Error("Two-point polygon should be degenerate")
	}
}

func TestDecodeSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
		index int
	}{
		{"no height", `{"imgWidth": 10, "objects": []}`, "imgHeight", -1},
		{"no width", `{"imgHeight": 10, "objects": []}`, "imgWidth", -1},
		{"no objects", `{"imgHeight": 10, "imgWidth": 10}`, "objects", -1},
		{"no label", `{"imgHeight": 10, "imgWidth": 10, "objects": [{"polygon": []}]}`, "label", 0},
		{"no polygon", `{"imgHeight": 10, "imgWidth": 10, "objects": [{"label": "a", "polygon": []}, {"label": "b"}]}`, "polygon", 1},
		{"bad point", `{"imgHeight": 10, "imgWidth": 10, "objects": [{"label": "a", "polygon": [[1, 2, 3]]}]}`, "polygon", 0},
		{"zero size", `{"imgHeight": 0, "imgWidth": 10, "objects": []}`, "imgHeight/imgWidth", -1},
		{"huge size", `{"imgHeight": 1000000000, "imgWidth": 1000000000, "objects": []}`, "imgHeight/imgWidth", -1},
		{"too many pixels", `{"imgHeight": 20000, "imgWidth": 20000, "objects": []}`, "imgHeight/imgWidth", -1},
		{"null x", `{"imgHeight": 10, "imgWidth": 10, "objects": [{"label": "a", "polygon": [[null, 5], [1, 1], [2, 2]]}]}`, "polygon", 0},
		{"null y", `{"imgHeight": 10, "imgWidth": 10, "objects": [{"label": "a", "polygon": []}, {"label": "b", "polygon": [[1, 1], [2, null]]}]}`, "polygon", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))

			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Expected SchemaError, got %v", err)
			}
			if se.Field != tt.field || se.Index != tt.index {
				t.Errorf("Expected field %s at %d, got %s at %d", tt.field, tt.index, se.Field, se.Index)
			}
		})
	}
}

func TestDecodeWrongType(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"imgHeight": "tall", "imgWidth": 10, "objects": []}`))

	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
	if se.Field != "imgHeight" {
		t.Errorf("Expected field imgHeight, got %s", se.Field)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"imgHeight": 10,`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = Load(broken)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if pe.Path != broken {
		t.Errorf("Expected path %s, got %s", broken, pe.Path)
	}
	if !strings.Contains(err.Error(), broken) {
		t.Errorf("Error should mention the file: %v", err)
	}
}

func TestLoadSchemaErrorPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	if err := os.WriteFile(path, []byte(`{"imgHeight": 10, "imgWidth": 10, "objects": [{"polygon": []}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
	if !strings.Contains(err.Error(), "objects[0].label") {
		t.Errorf("Error should name the field: %v", err)
	}
}
