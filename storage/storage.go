// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"fmt"

	"github.com/avoss/pollbooth/cliparse"
)

// Backend is the persistence boundary of the poll store. A backend
// carries flat records only; it knows nothing about polls beyond the
// row shape [key_or_name, description, label1, votes1, ...].
type Backend interface {
	// LoadRecords reads every stored record in order. A backing store
	// that does not exist yet loads as zero records, not an error.
	LoadRecords() ([][]string, error)

	// SaveRecords replaces the entire backing store with the given
	// records, in order.
	SaveRecords(records [][]string) error

	// WriteExport writes a human-readable export named "<key>.txt"
	// alongside the backing store.
	WriteExport(key string, body []byte) error

	Close() error
}

// Open constructs the backend selected by the configuration.
func Open(cfg cliparse.Config) (Backend, error) {
	switch cfg.BackendType {
	case cliparse.BackendCSV:
		return NewCSVBackend(cfg.BackingFile), nil
	case cliparse.BackendSQLite:
		return OpenSQLiteBackend(cfg.BackingFile)
	default:
		return nil, fmt.Errorf("unknown backend type %q", cfg.BackendType)
	}
}
