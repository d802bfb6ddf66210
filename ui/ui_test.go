// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoss/pollbooth/cliparse"
	"github.com/avoss/pollbooth/store"
	"github.com/avoss/pollbooth/testutil"
)

var testConfig = cliparse.Config{
	BackingFile: "polls.csv",
	BackendType: cliparse.BackendCSV,
	VoteLimit:   100,
}

// runScript feeds a scripted session into the store and returns the
// session transcript.
func runScript(t *testing.T, st *store.Store, script string) string {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(st, testConfig, strings.NewReader(script), &out)
	require.NoError(t, session.Run())
	return out.String()
}

func TestCreateListView(t *testing.T) {
	st, fake := testutil.NewStore(t)

	script := strings.Join([]string{
		"create",
		"Lunch",
		"What to eat?",
		"Pizza, Sushi",
		"", // default vote limit
		"list",
		"view poll1: Lunch",
		"quit",
	}, "\n") + "\n"
	out := runScript(t, st, script)

	assert.Contains(t, out, `created "poll1: Lunch"`)
	assert.Contains(t, out, "poll1: Lunch  (open, 0 votes)")
	assert.Contains(t, out, "Name: Lunch")
	assert.Contains(t, out, "Pizza - 0")
	assert.Contains(t, out, "Total: 0 of 100")

	// Creation saves the store
	assert.Equal(t, 1, fake.SaveCalls)
	require.Len(t, fake.Records, 1)
}

func TestCreateRejectsSingleChoice(t *testing.T) {
	st, fake := testutil.NewStore(t)

	out := runScript(t, st, "create\nLunch\n\nPizza\n\nquit\n")

	assert.Contains(t, out, "could not create poll")
	assert.Zero(t, fake.SaveCalls)
	assert.Empty(t, st.List())
}

func TestVoteFlow(t *testing.T) {
	st, fake, key := testutil.SeededStore(t)

	out := runScript(t, st, "vote "+key+"\nPizza\nquit\n")

	assert.Contains(t, out, `vote recorded for "Pizza"`)
	data, _ := st.Get(key)
	assert.Equal(t, 1, data.TotalVotes)
	assert.Equal(t, 1, fake.SaveCalls)
}

func TestVoteUnknownChoice(t *testing.T) {
	st, fake, key := testutil.SeededStore(t)

	out := runScript(t, st, "vote "+key+"\nRamen\nquit\n")

	assert.Contains(t, out, "vote rejected")
	assert.Zero(t, fake.SaveCalls)
}

func TestVoteClosedPoll(t *testing.T) {
	st, _, key := testutil.SeededStore(t)
	for i := 0; i < 100; i++ {
		require.True(t, st.CastVote(key, "Pizza"))
	}

	out := runScript(t, st, "vote "+key+"\nquit\n")

	assert.Contains(t, out, "closed")
	data, _ := st.Get(key)
	assert.Equal(t, 100, data.TotalVotes)
}

func TestEditRekeysPoll(t *testing.T) {
	st, fake, key := testutil.SeededStore(t)
	st.CastVote(key, "Pizza")

	script := strings.Join([]string{
		"edit " + key,
		"Dinner",
		"", // keep description
		"Pizza, Ramen",
		"quit",
	}, "\n") + "\n"
	out := runScript(t, st, script)

	assert.Contains(t, out, `updated, now keyed "Dinner"`)
	data, ok := st.Get("Dinner")
	require.True(t, ok)
	assert.Equal(t, "What to eat?", data.Description)
	assert.Equal(t, 1, data.TotalVotes)
	assert.Equal(t, 1, fake.SaveCalls)
}

func TestDeleteTwice(t *testing.T) {
	st, _, key := testutil.SeededStore(t)

	out := runScript(t, st, "delete "+key+"\ndelete "+key+"\nquit\n")

	assert.Contains(t, out, `deleted "`+key+`"`)
	assert.Contains(t, out, `poll "`+key+`" not found`)
}

func TestExportCommand(t *testing.T) {
	st, fake, key := testutil.SeededStore(t)

	out := runScript(t, st, "export "+key+"\nquit\n")

	assert.Contains(t, out, "exported to")
	assert.Contains(t, string(fake.Exports[key]), "Name: Lunch")
}

func TestExportMissingPoll(t *testing.T) {
	st, _ := testutil.NewStore(t)

	out := runScript(t, st, "export nope\nquit\n")

	assert.Contains(t, out, "export failed")
}

func TestReloadReportsCount(t *testing.T) {
	st, _, _ := testutil.SeededStore(t)
	require.NoError(t, st.Save())

	out := runScript(t, st, "reload\nquit\n")

	assert.Contains(t, out, "reloaded 1 polls")
}

func TestSaveFailureKeepsSessionAlive(t *testing.T) {
	st, fake, key := testutil.SeededStore(t)
	fake.SaveErr = errors.New("disk full")

	out := runScript(t, st, "vote "+key+"\nPizza\nlist\nquit\n")

	assert.Contains(t, out, "could not save")
	assert.Contains(t, out, key)
}

func TestUnknownCommand(t *testing.T) {
	st, _ := testutil.NewStore(t)

	out := runScript(t, st, "frobnicate\nquit\n")

	assert.Contains(t, out, `unknown command "frobnicate"`)
}

func TestEndOfInputEndsSession(t *testing.T) {
	st, _ := testutil.NewStore(t)

	out := runScript(t, st, "list\n")

	assert.Contains(t, out, "no polls yet")
}

func TestSplitChoices(t *testing.T) {
	assert.Equal(t, []string{"Pizza", "Sushi"}, splitChoices("Pizza, Sushi"))
	assert.Equal(t, []string{"a", "b"}, splitChoices(" a ,, b , "))
	assert.Empty(t, splitChoices(""))
}
