// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the collection of polls and its synchronization with
a storage backend.

# Operations

The store exposes the full contract the front end needs:

	st := store.New(backend)
	key, ok := st.Create("Lunch", "What to eat?", []string{"Pizza", "Sushi"}, 100)
	st.List()                 // ["poll1: Lunch"]
	data, ok := st.Get(key)   // snapshot, or ok=false when missing
	st.CastVote(key, "Pizza") // false on closed poll or unknown choice
	st.Modify(key, "Dinner", "", []string{"Pizza", "Ramen"})
	st.Delete(key)
	st.Export(key)            // writes "<key>.txt" beside the backing store
	st.Save()                 // full rewrite of the backing store
	st.Reload()               // drop memory, read the backing store fresh

# Persistence contract

Mutators never touch the backend. Callers persist explicitly with Save
after each mutating action, which keeps the collection testable against
a fake backend. Save rewrites the whole backing store; Reload discards
any unsaved in-memory state.

# Keys

New polls are keyed "poll<N>: <name>" with an in-memory sequence that
restarts at 1 each process. Edited polls are re-keyed under their bare
new name, and the persisted record stores the poll's display name, so
keys are renumbered across a save/reload cycle. Both quirks are legacy
file-format behavior, kept for compatibility.

# Failure reporting

Absence and rejection are return values, not errors: ok-bools for
lookups and creation, plain bools for vote/delete/modify. Errors are
reserved for backend I/O and malformed stored records, which abort a
Load with the offending record's number.
*/
package store
