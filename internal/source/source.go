// Package source decodes numeric arrays from JSON, YAML, CSV and XLSX input.
//
// JSON and YAML accept a nested list (or a bare number for a scalar), or an
// object in the "split" layout with optional labels:
//
//	{"columns": ["a", "b"], "index": ["x", "y"], "data": [[1, 2], [3, 4]]}
//
// CSV and XLSX always yield a two-dimensional array; with [Options.Header]
// the first row becomes the column labels.
package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bjaus/arraytex"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrNotNumeric        = errors.New("non-numeric value")
)

// Format is an input encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

var formats = []Format{JSON, YAML, CSV, XLSX}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported input formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return JSON
}

// Options controls decoding.
type Options struct {
	// Sheet selects the XLSX worksheet. Default: the first sheet.
	Sheet string
	// Header treats the first CSV/XLSX row as column labels.
	Header bool
}

// Table is a decoded array with any labels found in the input.
type Table struct {
	Array   arraytex.Array
	Columns []string
	Index   []string
}

// Decode reads one array from r.
func Decode(r io.Reader, f Format, opts Options) (Table, error) {
	switch f {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case CSV:
		return decodeCSV(r, opts)
	case XLSX:
		return decodeXLSX(r, opts)
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
