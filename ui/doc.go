// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ui provides the interactive terminal front end.

A Session reads commands from an input stream and maps each one onto a
single store operation, saving the store after every successful
mutation:

	session := ui.NewSession(st, cfg, os.Stdin, os.Stdout)
	err := session.Run()

# Commands

	list            list all polls with status and total votes
	view <key>      show one poll's tallies
	create          create a poll (prompts for name, description, choices, limit)
	vote <key>      cast a vote (prompts for the choice)
	edit <key>      edit name, description, or choices (blank keeps current)
	delete <key>    remove a poll
	export <key>    write <key>.txt beside the backing store
	reload          discard memory and re-read the backing store
	quit            exit

Poll keys contain spaces ("poll1: Lunch"), so everything after the
command word is the key. Rejections the store reports as false -
voting on a closed poll, an unknown choice, a missing key - are
printed to the session; backend I/O failures are also logged.

The reader and writer are injected, so a whole session can be driven
from a script in tests.
*/
package ui
