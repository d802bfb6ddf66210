package logger

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Init installs the default slog logger on stderr: human-readable text
// when attached to a terminal, JSON otherwise. Stdout is left to the
// interactive session.
func Init() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
