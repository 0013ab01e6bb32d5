package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a record batch.
type Format string

const (
	FormatJSON      Format = "json"  // a single JSON array
	FormatJSONLines Format = "jsonl" // one JSON value per line
	FormatYAML      Format = "yaml"  // a YAML sequence
)

// ErrNotSequence is returned when the document is not a list of records.
var ErrNotSequence = errors.New("records document is not a sequence")

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONLines, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported records file extension %q", filepath.Ext(path))
}

// Decode parses data into a list of records. Objects decode to
// map[string]any and arrays to []any.
func Decode(data []byte, format Format) ([]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatJSONLines:
		return decodeJSONLines(data)
	case FormatYAML:
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("unsupported records format %q", format)
}

// ReadFile reads and decodes a records file, inferring its format from the extension.
func ReadFile(path string) ([]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file %s: %w", path, err)
	}
	recs, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decoding records file %s: %w", path, err)
	}
	return recs, nil
}

func decodeJSON(data []byte) ([]any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	recs, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, doc)
	}
	return recs, nil
}

func decodeJSONLines(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	recs := []any{}
	for line := 1; ; line++ {
		var rec any
		err := dec.Decode(&rec)
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("invalid json at record %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
}

func decodeYAML(data []byte) ([]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if doc == nil {
		return []any{}, nil // empty document
	}
	recs, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, doc)
	}
	return recs, nil
}
