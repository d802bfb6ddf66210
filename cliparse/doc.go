// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BackingFile: path of the persistent poll store (default: polls.csv)
  - BackendType: storage backend, csv or sqlite (default: csv)
  - VoteLimit: default vote limit for new polls (default: 100)

# CLI Flags

	-f  Backing file path
	-t  Storage backend (csv or sqlite)
	-l  Default vote limit for new polls

# Environment Variables

Flags fall back to environment variables:

	POLLBOOTH_FILE       → -f
	POLLBOOTH_BACKEND    → -t
	POLLBOOTH_VOTE_LIMIT → -l

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first, so either source may live there.

# Validation

ParseFlags returns an error if:

  - the backend type is neither csv nor sqlite
  - the vote limit is negative or not an integer
*/
package cliparse
