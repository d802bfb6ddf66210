// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoss/pollbooth/cliparse"
	"github.com/avoss/pollbooth/storage"
	"github.com/avoss/pollbooth/testutil"
)

func csvConfig(dir string) cliparse.Config {
	return cliparse.Config{
		BackingFile: filepath.Join(dir, "polls.csv"),
		BackendType: cliparse.BackendCSV,
		VoteLimit:   100,
	}
}

func sqliteConfig(dir string) cliparse.Config {
	return cliparse.Config{
		BackingFile: filepath.Join(dir, "polls.db"),
		BackendType: cliparse.BackendSQLite,
		VoteLimit:   100,
	}
}

func TestSQLiteFreshStoreLoadsEmpty(t *testing.T) {
	backend, _ := testutil.TempSQLiteBackend(t)

	records, err := backend.LoadRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteRoundTrip(t *testing.T) {
	backend, _ := testutil.TempSQLiteBackend(t)
	records := [][]string{
		{"Lunch", "What to eat?", "Pizza", "3", "Sushi", "1"},
		{"Movie night", "", "Alien", "0", "Heat", "2", "Tampopo", "5"},
	}

	require.NoError(t, backend.SaveRecords(records))

	loaded, err := backend.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSQLiteSaveIsFullRewrite(t *testing.T) {
	backend, _ := testutil.TempSQLiteBackend(t)
	require.NoError(t, backend.SaveRecords([][]string{
		{"A", "", "x", "1", "y", "2"},
		{"B", "", "x", "3", "y", "4"},
	}))

	require.NoError(t, backend.SaveRecords([][]string{
		{"B", "", "x", "3", "y", "4"},
	}))

	loaded, err := backend.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "", "x", "3", "y", "4"}}, loaded)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polls.db")
	backend, err := storage.OpenSQLiteBackend(path)
	require.NoError(t, err)
	require.NoError(t, backend.SaveRecords([][]string{{"Lunch", "d", "Pizza", "7", "Sushi", "0"}}))
	require.NoError(t, backend.Close())

	reopened, err := storage.OpenSQLiteBackend(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Lunch", "d", "Pizza", "7", "Sushi", "0"}}, loaded)
}

func TestSQLiteRejectsBadVoteCount(t *testing.T) {
	backend, _ := testutil.TempSQLiteBackend(t)

	err := backend.SaveRecords([][]string{{"Lunch", "d", "Pizza", "four"}})
	assert.ErrorContains(t, err, "not an integer")
}

func TestSQLiteWriteExportBesideDatabase(t *testing.T) {
	backend, path := testutil.TempSQLiteBackend(t)

	require.NoError(t, backend.WriteExport("poll1: Lunch", []byte("Name: Lunch\n")))

	body, err := os.ReadFile(filepath.Join(filepath.Dir(path), "poll1: Lunch.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Name: Lunch\n", string(body))
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	csvBackend, err := storage.Open(csvConfig(dir))
	require.NoError(t, err)
	defer csvBackend.Close()
	assert.IsType(t, &storage.CSVBackend{}, csvBackend)

	sqliteBackend, err := storage.Open(sqliteConfig(dir))
	require.NoError(t, err)
	defer sqliteBackend.Close()
	assert.IsType(t, &storage.SQLiteBackend{}, sqliteBackend)
}
