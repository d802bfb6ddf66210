// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/avoss/pollbooth/cliparse"
	"github.com/avoss/pollbooth/store"
)

// Session is the interactive front end: a command loop that maps each
// user action onto one store operation and saves after every mutation.
type Session struct {
	store *store.Store
	cfg   cliparse.Config
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(st *store.Store, cfg cliparse.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		store: st,
		cfg:   cfg,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run processes commands until quit or end of input.
func (s *Session) Run() error {
	s.printf("pollbooth - type 'help' for commands\n")

	for {
		s.printf("> ")
		line, ok := s.readLine()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		cmd, rest := splitCommand(line)
		switch cmd {
		case "help":
			s.help()
		case "list":
			s.list()
		case "view":
			s.view(rest)
		case "create":
			s.create()
		case "vote":
			s.vote(rest)
		case "edit":
			s.edit(rest)
		case "delete":
			s.deletePoll(rest)
		case "export":
			s.export(rest)
		case "reload":
			s.reload()
		case "quit", "exit":
			return nil
		default:
			s.printf("unknown command %q - type 'help' for commands\n", cmd)
		}
	}
	return s.in.Err()
}

func (s *Session) help() {
	s.printf(`commands:
  list            list all polls
  view <key>      show a poll's tallies
  create          create a new poll
  vote <key>      cast a vote on a poll
  edit <key>      edit a poll's name, description, or choices
  delete <key>    delete a poll
  export <key>    export a poll to <key>.txt
  reload          reload polls from the backing store
  quit            exit
`)
}

func (s *Session) list() {
	keys := s.store.List()
	if len(keys) == 0 {
		s.printf("no polls yet - try 'create'\n")
		return
	}
	for _, key := range keys {
		data, ok := s.store.Get(key)
		if !ok {
			continue
		}
		status := "open"
		if data.Closed {
			status = "closed"
		}
		s.printf("  %s  (%s, %s votes)\n", key, status, humanize.Comma(int64(data.TotalVotes)))
	}
}

func (s *Session) view(key string) {
	if key == "" {
		s.printf("usage: view <key>\n")
		return
	}
	data, ok := s.store.Get(key)
	if !ok {
		s.printf("poll %q not found\n", key)
		return
	}

	s.printf("Name: %s\n", data.Name)
	s.printf("Description: %s\n", data.Description)
	for _, c := range data.Choices {
		s.printf("  %s - %s\n", c.Label, humanize.Comma(int64(c.Votes)))
	}
	s.printf("Total: %s of %s", humanize.Comma(int64(data.TotalVotes)), humanize.Comma(int64(data.VoteLimit)))
	if data.Closed {
		s.printf(" (closed)")
	}
	s.printf("\n")
}

func (s *Session) create() {
	name := s.prompt("Name: ")
	if name == "" {
		s.printf("a poll needs a name\n")
		return
	}
	description := s.prompt("Description (optional): ")
	choices := splitChoices(s.prompt("Choices (comma-separated, 2-4): "))

	limit := s.cfg.VoteLimit
	if limitStr := s.prompt(fmt.Sprintf("Vote limit (default %d): ", limit)); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			s.printf("vote limit must be a positive integer\n")
			return
		}
		limit = n
	}

	key, ok := s.store.Create(name, description, choices, limit)
	if !ok {
		s.printf("could not create poll: need 2-4 distinct non-empty choices and an unused key\n")
		return
	}

	slog.Info("poll created", "key", key, "choices", len(choices))
	s.printf("created %q\n", key)
	s.save()
}

func (s *Session) vote(key string) {
	if key == "" {
		s.printf("usage: vote <key>\n")
		return
	}
	data, ok := s.store.Get(key)
	if !ok {
		s.printf("poll %q not found\n", key)
		return
	}
	if data.Closed {
		s.printf("poll %q is closed\n", key)
		return
	}

	choice := s.prompt("Choice: ")
	if !s.store.CastVote(key, choice) {
		s.printf("vote rejected: poll closed or no choice %q\n", choice)
		return
	}

	slog.Info("vote cast", "key", key, "choice", choice)
	s.printf("vote recorded for %q\n", choice)
	s.save()
}

func (s *Session) edit(key string) {
	if key == "" {
		s.printf("usage: edit <key>\n")
		return
	}
	data, ok := s.store.Get(key)
	if !ok {
		s.printf("poll %q not found\n", key)
		return
	}

	name := s.prompt(fmt.Sprintf("Name [%s]: ", data.Name))
	if name == "" {
		name = data.Name
	}
	description := s.prompt(fmt.Sprintf("Description [%s]: ", data.Description))
	if description == "" {
		description = data.Description
	}

	labels := make([]string, 0, len(data.Choices))
	for _, c := range data.Choices {
		labels = append(labels, c.Label)
	}
	choiceLine := s.prompt(fmt.Sprintf("Choices [%s]: ", strings.Join(labels, ", ")))
	choices := labels
	if choiceLine != "" {
		choices = splitChoices(choiceLine)
	}

	if !s.store.Modify(key, name, description, choices) {
		s.printf("poll %q not found\n", key)
		return
	}

	slog.Info("poll modified", "old_key", key, "new_key", name)
	s.printf("updated, now keyed %q\n", name)
	s.save()
}

func (s *Session) deletePoll(key string) {
	if key == "" {
		s.printf("usage: delete <key>\n")
		return
	}
	if !s.store.Delete(key) {
		s.printf("poll %q not found\n", key)
		return
	}

	slog.Info("poll deleted", "key", key)
	s.printf("deleted %q\n", key)
	s.save()
}

func (s *Session) export(key string) {
	if key == "" {
		s.printf("usage: export <key>\n")
		return
	}
	if err := s.store.Export(key); err != nil {
		slog.Error("export failed", "key", key, "error", err)
		s.printf("export failed: %v\n", err)
		return
	}

	slog.Info("poll exported", "key", key)
	s.printf("exported to %q\n", key+".txt")
}

func (s *Session) reload() {
	if err := s.store.Reload(); err != nil {
		slog.Error("reload failed", "error", err)
		s.printf("reload failed: %v\n", err)
		return
	}
	s.printf("reloaded %d polls\n", len(s.store.List()))
}

// save persists the whole store after a successful mutation. An I/O
// failure is reported but does not end the session.
func (s *Session) save() {
	if err := s.store.Save(); err != nil {
		slog.Error("save failed", "error", err)
		s.printf("warning: could not save: %v\n", err)
	}
}

func (s *Session) prompt(label string) string {
	s.printf("%s", label)
	line, _ := s.readLine()
	return line
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// splitCommand separates the command word from its argument; the
// argument is usually a poll key, which may itself contain spaces.
func splitCommand(line string) (cmd, rest string) {
	cmd, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func splitChoices(line string) []string {
	parts := strings.Split(line, ",")
	choices := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			choices = append(choices, trimmed)
		}
	}
	return choices
}
