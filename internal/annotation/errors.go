package annotation

import "fmt"

// ParseError is returned when the annotation file is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid annotation JSON: %v", e.Err)
	}
	return fmt.Sprintf("invalid annotation JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when a required field is absent or has the wrong shape.
// Index is the position in "objects", or -1 for top-level fields.
type SchemaError struct {
	Path  string
	Field string
	Index int
	Msg   string
}

func (e *SchemaError) Error() string {
	where := e.Field
	if e.Index >= 0 {
		where = fmt.Sprintf("objects[%d].%s", e.Index, e.Field)
	}
	if e.Path != "" {
		where = e.Path + ": " + where
	}
	return fmt.Sprintf("annotation schema: %s: %s", where, e.Msg)
}

func missing(field string, index int) *SchemaError {
	return &SchemaError{Field: field, Index: index, Msg: "required field is missing"}
}
