package main

import (
	"log/slog"
	"os"

	"github.com/avoss/pollbooth/cliparse"
	"github.com/avoss/pollbooth/logger"
	"github.com/avoss/pollbooth/storage"
	"github.com/avoss/pollbooth/store"
	"github.com/avoss/pollbooth/ui"
)

func main() {
	logger.Init()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the storage backend
	backend, err := storage.Open(cfg)
	if err != nil {
		slog.Error("failed to open storage backend", "error", err, "file", cfg.BackingFile)
		os.Exit(1)
	}
	defer backend.Close()

	// Load existing polls; a missing backing file means an empty store
	st := store.New(backend)
	if err := st.Load(); err != nil {
		slog.Error("failed to load polls", "error", err, "file", cfg.BackingFile)
		os.Exit(1)
	}
	slog.Info("store ready", "file", cfg.BackingFile, "backend", cfg.BackendType, "polls", len(st.List()))

	// Run the interactive session
	session := ui.NewSession(st, cfg, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		slog.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
