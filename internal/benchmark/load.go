package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FormatError reports an input file whose top-level JSON value is not an array.
type FormatError struct {
	Path string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is not a JSON array", e.Path)
}

// LoadFile parses one input file as a single JSON document whose top level
// must be an array of records. Invalid JSON is surfaced wrapped with the
// offending path; elements are accepted as-is, with missing fields left to
// their zero values.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	trimmed := bytes.TrimLeft(top, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FormatError{Path: path}
	}

	var records []Record
	if err := json.Unmarshal(top, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// LoadFiles loads each path independently and concatenates the record
// sequences in argument order. The first failure aborts the load.
func LoadFiles(paths []string) ([]Record, error) {
	var records []Record
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, loaded...)
	}
	return records, nil
}
