// Package source loads records from CSV, JSON and YAML documents.
package source

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shape-utils/pivot"
)

// Format names an input encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for an unrecognised format or extension.
	ErrUnknownFormat = errors.New("source: unknown format")
	// ErrMalformed wraps every decoding failure.
	ErrMalformed = errors.New("source: malformed input")
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// DetectFormat maps the extension of path to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: cannot detect the format of %q", ErrUnknownFormat, path)
}

// Open loads the file at path, or standard input for [Stdin]. An empty
// format is detected from the extension.
func Open(path string, format Format) ([]pivot.Record, error) {
	if format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	if path == Stdin {
		return Load(os.Stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, format)
}

// Load decodes every record in r.
//
// Records are *pivot.Row values with fields in document order. Empty input
// yields an empty slice.
func Load(r io.Reader, format Format) ([]pivot.Record, error) {
	switch format {
	case CSV:
		return loadCSV(r)
	case JSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeRows(data)
	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func decodeRows(data []byte) ([]pivot.Record, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return []pivot.Record{}, nil
	}
	var rows []*pivot.Row
	if err := json.Unmarshal([]byte(trimmed), &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrMalformed, i)
		}
	}
	return pivot.Records(rows), nil
}

// decodeYAML walks the document node so mapping keys keep their order.
func decodeYAML(data []byte) ([]pivot.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []pivot.Record{}, nil
	}
	list := doc.Content[0]
	if list.Kind == yaml.ScalarNode && list.Tag == "!!null" {
		return []pivot.Record{}, nil
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a list of records", ErrMalformed, list.Line)
	}

	out := make([]pivot.Record, 0, len(list.Content))
	for _, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: expected a mapping", ErrMalformed, item.Line)
		}
		row := &pivot.Row{}
		for i := 0; i+1 < len(item.Content); i += 2 {
			var v any
			if err := item.Content[i+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, item.Content[i+1].Line, err)
			}
			row.Set(item.Content[i].Value, v)
		}
		out = append(out, row)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CSV
// ─────────────────────────────────────────────────────────────────────────────

func loadCSV(r io.Reader) ([]pivot.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []pivot.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := []pivot.Record{}
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		row := &pivot.Row{}
		for i, name := range header {
			row.Set(name, cell(cells[i]))
		}
		out = append(out, row)
	}
}

// cell converts canonical decimal numbers to int64 or float64. Anything
// else, including "007", "1.50" and "NaN", stays a string.
func cell(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	return s
}
