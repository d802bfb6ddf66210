// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger configures the process-wide slog logger.

Init installs the default logger on stderr, keeping stdout free for the
interactive session:

	logger.Init()
	slog.Info("store ready", "polls", n)

The handler is human-readable text when stderr is a terminal and JSON
otherwise, so redirected or captured logs stay machine-parseable.
*/
package logger
