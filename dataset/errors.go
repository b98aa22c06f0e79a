package dataset

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a source file's
// header.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.File, strings.Join(e.Missing, ", "))
}

// ParseError reports a structurally malformed row (wrong field count,
// broken quoting) in a source file.
type ParseError struct {
	File string
	Row  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
