// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements a single poll: a named decision with an ordered
set of 2-4 choices and per-choice vote tallies.

# Lifecycle

A poll is open when created and closes permanently once its total tally
reaches the vote limit:

	p := poll.New("Lunch", "What to eat?", 100, []string{"Pizza", "Sushi"})
	p.CastVote("Pizza") // true
	p.Closed()          // true after 100 accepted votes

CastVote reports false, without side effects, for a closed poll or an
unknown choice label. There is no transition out of closed.

# Invariants

At all times:

  - TotalVotes() equals the sum of the choice tallies
  - Closed() equals (TotalVotes() >= VoteLimit)

# Persistence shape

Record and ParseRecord convert a poll to and from the flat row stored in
the backing file:

	[name, description, label1, votes1, label2, votes2, ...]

The vote limit is not part of the record; every parsed poll comes back
with DefaultVoteLimit.
*/
package poll
