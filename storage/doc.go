// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the persistence backends for the poll store.

# Backend Interface

A Backend moves flat records in and out of a backing store:

	backend, err := storage.Open(cfg)
	records, err := backend.LoadRecords()
	err = backend.SaveRecords(records)
	err = backend.WriteExport("poll1: Lunch", body)

Records are the row shape produced by poll.Record. Every save replaces
the whole store; there is no append path. A backing store that does not
exist yet loads as zero records.

# Backends

  - CSVBackend: one poll per row in a headerless CSV file. Saves write
    to a temp file and rename into place.
  - SQLiteBackend: the same records normalized into poll and choice
    tables in an embedded SQLite database (modernc.org/sqlite, no cgo).

Both carry the identical record shape, so a store round-trips the same
way regardless of backend. Export files land next to the backing store
in either case.
*/
package storage
