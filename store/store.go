// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"

	"github.com/avoss/pollbooth/poll"
	"github.com/avoss/pollbooth/storage"
)

// Bounds on the choice count of a newly created poll.
const (
	MinChoices = 2
	MaxChoices = 4
)

// ErrNotFound is returned by Export for a key with no poll behind it.
var ErrNotFound = errors.New("poll not found")

// Store owns the ordered collection of polls and synchronizes it with a
// storage backend. Mutators touch memory only; callers persist with an
// explicit Save after each mutating action.
//
// Not safe for concurrent use. Every operation runs to completion on
// the caller's goroutine; the tool is single-user by design.
type Store struct {
	backend storage.Backend

	keys  []string
	polls map[string]*poll.Poll

	// nextSeq lives only in memory. After a Reload the numbering keeps
	// counting from wherever the session left it; a fresh process
	// starts at 1 regardless of what the backing store holds.
	nextSeq int
}

// Data is a read-only snapshot of one poll, returned by Get.
type Data struct {
	Name        string
	Description string
	VoteLimit   int
	Choices     []poll.Choice
	TotalVotes  int
	Closed      bool
}

func New(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		polls:   make(map[string]*poll.Poll),
		nextSeq: 1,
	}
}

// Create adds a poll under the composite key "poll<N>: <name>" and
// returns the key. The sequence number is consumed even when the
// creation is rejected. Empty choice labels are dropped before the 2-4
// bound is checked; a duplicate key or an out-of-bounds choice count
// rejects the creation with ok false and no side effect on the
// collection.
func (s *Store) Create(name, description string, choices []string, voteLimit int) (key string, ok bool) {
	key = fmt.Sprintf("poll%d: %s", s.nextSeq, name)
	s.nextSeq++

	if _, exists := s.polls[key]; exists {
		return "", false
	}

	p := poll.New(name, description, voteLimit, choices)
	if n := len(p.Choices()); n < MinChoices || n > MaxChoices {
		return "", false
	}

	s.keys = append(s.keys, key)
	s.polls[key] = p
	return key, true
}

// List returns the poll keys in insertion order.
func (s *Store) List() []string {
	return append([]string(nil), s.keys...)
}

// Get returns a snapshot of the poll under key, with ok reporting
// whether it exists.
func (s *Store) Get(key string) (Data, bool) {
	p, ok := s.polls[key]
	if !ok {
		return Data{}, false
	}
	return Data{
		Name:        p.Name,
		Description: p.Description,
		VoteLimit:   p.VoteLimit,
		Choices:     p.Choices(),
		TotalVotes:  p.TotalVotes(),
		Closed:      p.Closed(),
	}, true
}

// CastVote records one vote for choice on the poll under key. It
// reports false, changing nothing, when the key is unknown, the poll is
// closed, or the choice label does not exist.
func (s *Store) CastVote(key, choice string) bool {
	p, ok := s.polls[key]
	if !ok {
		return false
	}
	return p.CastVote(choice)
}

// Delete removes the poll under key, reporting whether a removal
// occurred.
func (s *Store) Delete(key string) bool {
	if _, ok := s.polls[key]; !ok {
		return false
	}
	delete(s.polls, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Modify replaces the name, description, and choice set of the poll
// under oldKey. Choices kept across the edit keep their tallies; new
// choices start at zero; dropped choices lose their votes.
//
// The edited poll is re-keyed under the bare new name, not a fresh
// "poll<N>: " key. The legacy backing-file format stores that first
// field verbatim, so the create/edit key asymmetry is preserved for
// compatibility with files written by earlier versions of the tool.
// Re-keying onto a name already in use replaces the poll held under
// that name, keeping exactly one entry per key.
func (s *Store) Modify(oldKey, newName, newDescription string, newChoices []string) bool {
	p, ok := s.polls[oldKey]
	if !ok {
		return false
	}

	choices := make([]poll.Choice, 0, len(newChoices))
	seen := make(map[string]bool, len(newChoices))
	for _, label := range newChoices {
		if seen[label] {
			continue
		}
		seen[label] = true
		votes, _ := p.Votes(label)
		choices = append(choices, poll.Choice{Label: label, Votes: votes})
	}

	s.Delete(oldKey)
	// Drop any existing poll under the new name so the key list keeps
	// exactly one occurrence per key
	s.Delete(newName)
	p.Reconfigure(newName, newDescription, choices)
	s.keys = append(s.keys, newName)
	s.polls[newName] = p
	return true
}

// Export writes the poll's human-readable rendering to a text file
// named after the lookup key, next to the backing store. Returns
// ErrNotFound when no poll exists under key.
func (s *Store) Export(key string) error {
	p, ok := s.polls[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err := s.backend.WriteExport(key, []byte(p.ExportText())); err != nil {
		return fmt.Errorf("failed to export %q: %w", key, err)
	}
	return nil
}

// Save serializes every poll, in store order, and replaces the backing
// store with the result.
func (s *Store) Save() error {
	records := make([][]string, 0, len(s.keys))
	for _, key := range s.keys {
		records = append(records, s.polls[key].Record())
	}
	if err := s.backend.SaveRecords(records); err != nil {
		return fmt.Errorf("failed to save polls: %w", err)
	}
	return nil
}

// Load reads the backing store into the collection. Existing in-memory
// entries are kept; a loaded record whose key is already present
// replaces that entry in place. A backing store that does not exist yet
// loads as an empty collection.
//
// Every loaded poll gets the default vote limit: the creation-time
// limit is not part of the record and is not recoverable.
func (s *Store) Load() error {
	records, err := s.backend.LoadRecords()
	if err != nil {
		return fmt.Errorf("failed to load polls: %w", err)
	}

	for i, record := range records {
		key, p, err := poll.ParseRecord(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, exists := s.polls[key]; !exists {
			s.keys = append(s.keys, key)
		}
		s.polls[key] = p
	}
	return nil
}

// Reload clears the collection and loads it fresh from the backing
// store. Unsaved in-memory polls are lost. The key sequence counter is
// not reset.
func (s *Store) Reload() error {
	s.keys = nil
	s.polls = make(map[string]*poll.Poll)
	return s.Load()
}
