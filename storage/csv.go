// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// CSVBackend persists records as a headerless CSV file, one poll per
// row, with RFC 4180 quoting for embedded commas and newlines.
type CSVBackend struct {
	path string
}

func NewCSVBackend(path string) *CSVBackend {
	return &CSVBackend{path: path}
}

func (b *CSVBackend) LoadRecords() ([][]string, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run: no polls yet
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open backing file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows vary with choice count
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read backing file: %w", err)
	}
	return records, nil
}

// SaveRecords rewrites the whole file. The write goes to a uniquely
// named temp file in the same directory and is renamed into place, so a
// failure mid-write cannot truncate the existing store.
func (b *CSVBackend) SaveRecords(records [][]string) error {
	tmp := b.path + ".tmp-" + uuid.NewString()
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp backing file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write backing file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp backing file: %w", err)
	}

	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace backing file: %w", err)
	}
	return nil
}

func (b *CSVBackend) WriteExport(key string, body []byte) error {
	path := filepath.Join(filepath.Dir(b.path), key+".txt")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func (b *CSVBackend) Close() error { return nil }
