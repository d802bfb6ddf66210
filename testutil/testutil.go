// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/avoss/pollbooth/storage"
	"github.com/avoss/pollbooth/store"
)

// TempCSVBackend returns a CSV backend rooted in a fresh temp dir and
// the backing file path it writes to.
func TempCSVBackend(t *testing.T) (*storage.CSVBackend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polls.csv")
	return storage.NewCSVBackend(path), path
}

// TempSQLiteBackend returns a SQLite backend rooted in a fresh temp
// dir, closed automatically when the test ends.
func TempSQLiteBackend(t *testing.T) (*storage.SQLiteBackend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polls.db")
	backend, err := storage.OpenSQLiteBackend(path)
	if err != nil {
		t.Fatalf("failed to open sqlite backend: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return backend, path
}

// NewStore returns a store over a fake backend, plus the fake for
// inspection.
func NewStore(t *testing.T) (*store.Store, *FakeBackend) {
	t.Helper()
	fake := NewFakeBackend()
	return store.New(fake), fake
}

// SeededStore returns a store holding one freshly created poll and the
// key it lives under.
func SeededStore(t *testing.T) (*store.Store, *FakeBackend, string) {
	t.Helper()
	st, fake := NewStore(t)
	key, ok := st.Create("Lunch", "What to eat?", []string{"Pizza", "Sushi"}, 0)
	if !ok {
		t.Fatal("failed to seed store")
	}
	return st, fake, key
}

// FakeBackend is an in-memory storage.Backend that records saves and
// exports and can be told to fail.
type FakeBackend struct {
	Records [][]string
	Exports map[string][]byte

	SaveCalls int
	LoadErr   error
	SaveErr   error
	ExportErr error
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{Exports: make(map[string][]byte)}
}

func (f *FakeBackend) LoadRecords() ([][]string, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	records := make([][]string, len(f.Records))
	for i, r := range f.Records {
		records[i] = append([]string(nil), r...)
	}
	return records, nil
}

func (f *FakeBackend) SaveRecords(records [][]string) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Records = make([][]string, len(records))
	for i, r := range records {
		f.Records[i] = append([]string(nil), r...)
	}
	return nil
}

func (f *FakeBackend) WriteExport(key string, body []byte) error {
	if f.ExportErr != nil {
		return f.ExportErr
	}
	f.Exports[key] = append([]byte(nil), body...)
	return nil
}

func (f *FakeBackend) Close() error { return nil }
