// Package fileio reads listing documents from disk and writes pipeline
// results back out.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"zexplorer/internal/jsonval"
)

// File errors.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrMalformedJSON = errors.New("input file is not valid JSON")
)

// PrettyIndent is the indentation used for pretty-printed output.
const PrettyIndent = "    "

// LoadRecords reads and decodes the JSON document at path. Object key order
// is preserved. The document shape is not checked here.
func LoadRecords(path string) (jsonval.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return jsonval.Null(), fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}

		return jsonval.Null(), fmt.Errorf("failed to read input file: %w", err)
	}

	doc, err := jsonval.Unmarshal(data)
	if err != nil {
		return jsonval.Null(), fmt.Errorf("%w: %s: %v", ErrMalformedJSON, path, err)
	}

	return doc, nil
}

// SaveRecords writes records as a JSON array, creating parent directories as
// needed. Pretty output is indented by four spaces and ends with a newline.
func SaveRecords(path string, records []*jsonval.Object, pretty bool) error {
	data, err := EncodeRecords(records, pretty)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// EncodeRecords renders records as a JSON array.
func EncodeRecords(records []*jsonval.Object, pretty bool) ([]byte, error) {
	items := make([]jsonval.Value, 0, len(records))
	for _, rec := range records {
		items = append(items, jsonval.ObjectOf(rec))
	}

	doc := jsonval.ArrayOf(items)

	if !pretty {
		data, err := jsonval.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode records: %w", err)
		}

		return data, nil
	}

	data, err := jsonval.MarshalIndent(doc, "", PrettyIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}

	return append(data, '\n'), nil
}
