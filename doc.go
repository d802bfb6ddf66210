// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollbooth desktop poll
tool.

Pollbooth is a single-user poll-creation and voting tool: create polls
with a name, description, and 2-4 choices, cast votes until a poll
reaches its vote limit, view live tallies, edit or delete polls, and
export results to a text file. Everything persists to a flat backing
file.

# Running

	go run . -f polls.csv

Or with an embedded database instead of the CSV file:

	go run . -f polls.db -t sqlite

# Configuration

Optional settings (flags fall back to env variables, see cliparse):

  - POLLBOOTH_FILE (-f): backing file path (default: polls.csv)
  - POLLBOOTH_BACKEND (-t): csv or sqlite (default: csv)
  - POLLBOOTH_VOTE_LIMIT (-l): default vote limit for new polls (default: 100)

# Architecture

A small layered design with no concurrency:

  - poll: one poll's choices, tallies, and close-at-limit rule
  - store: the ordered poll collection and its save/load contract
  - storage: pluggable persistence backends (CSV file, SQLite)
  - ui: terminal session mapping commands to store operations
  - cliparse: configuration parsing
  - logger: slog setup

See package documentation for each component.
*/
package main
