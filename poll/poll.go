// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultVoteLimit is the tally threshold used when a poll is created
// without an explicit limit, and for every poll rebuilt from storage
// (the limit is not part of the persisted record).
const DefaultVoteLimit = 100

// ErrMalformedRecord is wrapped by ParseRecord for records that cannot
// be rebuilt into a poll.
var ErrMalformedRecord = errors.New("malformed poll record")

// Choice is one selectable option and its tally.
type Choice struct {
	Label string
	Votes int
}

// Poll is one named decision with an ordered set of choices. A poll
// closes permanently once its total tally reaches the vote limit.
//
// The choice order is the insertion order at creation or edit time and
// is preserved through Record and ExportText.
type Poll struct {
	Name        string
	Description string
	VoteLimit   int

	choices    []Choice
	totalVotes int
	closed     bool
}

// New creates an open poll with every choice starting at zero votes.
// Empty and duplicate labels are skipped. A limit of zero or less falls
// back to DefaultVoteLimit.
func New(name, description string, limit int, labels []string) *Poll {
	if limit <= 0 {
		limit = DefaultVoteLimit
	}

	p := &Poll{
		Name:        name,
		Description: description,
		VoteLimit:   limit,
	}
	for _, label := range labels {
		if label == "" || p.indexOf(label) >= 0 {
			continue
		}
		p.choices = append(p.choices, Choice{Label: label})
	}
	return p
}

// Restore rebuilds a poll from existing tallies. The total and closed
// state are recomputed from the counts, so a poll whose tallies already
// meet the limit comes back closed.
func Restore(name, description string, limit int, choices []Choice) *Poll {
	if limit <= 0 {
		limit = DefaultVoteLimit
	}

	p := &Poll{
		Name:        name,
		Description: description,
		VoteLimit:   limit,
		choices:     append([]Choice(nil), choices...),
	}
	for _, c := range p.choices {
		p.totalVotes += c.Votes
	}
	p.closed = p.totalVotes >= p.VoteLimit
	return p
}

// CastVote records one vote for the named choice. It reports false,
// changing nothing, when the poll is closed or the label is unknown.
// The poll closes when the total reaches the vote limit; there is no
// transition back to open.
func (p *Poll) CastVote(label string) bool {
	i := p.indexOf(label)
	if p.closed || i < 0 {
		return false
	}

	p.choices[i].Votes++
	p.totalVotes++
	if p.totalVotes >= p.VoteLimit {
		p.closed = true
	}
	return true
}

// Choices returns a copy of the choices in insertion order.
func (p *Poll) Choices() []Choice {
	return append([]Choice(nil), p.choices...)
}

// Votes returns the tally for one choice, with ok reporting whether the
// label exists.
func (p *Poll) Votes(label string) (votes int, ok bool) {
	i := p.indexOf(label)
	if i < 0 {
		return 0, false
	}
	return p.choices[i].Votes, true
}

// TotalVotes returns the sum of all choice tallies.
func (p *Poll) TotalVotes() int { return p.totalVotes }

// Closed reports whether the poll has stopped accepting votes.
func (p *Poll) Closed() bool { return p.closed }

// Record flattens the poll into the persisted row shape:
//
//	[name, description, label1, votes1, label2, votes2, ...]
func (p *Poll) Record() []string {
	record := []string{p.Name, p.Description}
	for _, c := range p.choices {
		record = append(record, c.Label, strconv.Itoa(c.Votes))
	}
	return record
}

// ParseRecord is the inverse of Record for rows read back from storage.
// The first field is returned as the store key; the display name is the
// part after a "<prefix>: " if the field carries one. The vote limit of
// a parsed poll is always DefaultVoteLimit.
func ParseRecord(record []string) (key string, p *Poll, err error) {
	if len(record) < 2 {
		return "", nil, fmt.Errorf("%w: want at least name and description, got %d fields", ErrMalformedRecord, len(record))
	}
	if len(record)%2 != 0 {
		return "", nil, fmt.Errorf("%w: odd trailing field %q", ErrMalformedRecord, record[len(record)-1])
	}

	key = record[0]
	name := key
	if parts := strings.Split(key, ": "); len(parts) > 1 {
		name = parts[1]
	}

	var choices []Choice
	for i := 2; i < len(record); i += 2 {
		votes, err := strconv.Atoi(record[i+1])
		if err != nil {
			return "", nil, fmt.Errorf("%w: vote count %q for choice %q is not an integer", ErrMalformedRecord, record[i+1], record[i])
		}
		choices = append(choices, Choice{Label: record[i], Votes: votes})
	}

	return key, Restore(name, record[1], DefaultVoteLimit, choices), nil
}

// Reconfigure replaces the poll's identity and choice set in place,
// recomputing the total from the new tallies. A poll that was already
// closed stays closed even when the edit drops its total back under the
// limit; an open poll closes if the new total meets the limit.
func (p *Poll) Reconfigure(name, description string, choices []Choice) {
	p.Name = name
	p.Description = description
	p.choices = append([]Choice(nil), choices...)
	p.totalVotes = 0
	for _, c := range p.choices {
		p.totalVotes += c.Votes
	}
	if p.totalVotes >= p.VoteLimit {
		p.closed = true
	}
}

// ExportText renders the poll for the human-readable export file:
//
//	Name: <name>
//	Description: <description>
//
//	<choice> - <votes>
//	...
func (p *Poll) ExportText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nDescription: %s\n\n", p.Name, p.Description)
	lines := make([]string, 0, len(p.choices))
	for _, c := range p.choices {
		lines = append(lines, fmt.Sprintf("%s - %d", c.Label, c.Votes))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (p *Poll) indexOf(label string) int {
	for i, c := range p.choices {
		if c.Label == label {
			return i
		}
	}
	return -1
}
