package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend type names accepted by -t / POLLBOOTH_BACKEND.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

type Config struct {
	BackingFile string
	BackendType string
	VoteLimit   int
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env file is fine; values may come from the real environment
	_ = godotenv.Load()

	fs := flag.NewFlagSet("pollbooth", flag.ContinueOnError)

	fs.StringVar(&cfg.BackingFile, "f", "", "Backing file path")
	fs.StringVar(&cfg.BackendType, "t", "", "Storage backend (csv or sqlite)")
	fs.IntVar(&cfg.VoteLimit, "l", 0, "Default vote limit for new polls")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BackingFile == "" {
		cfg.BackingFile = os.Getenv("POLLBOOTH_FILE")
	}
	if cfg.BackingFile == "" {
		cfg.BackingFile = "polls.csv" // default
	}

	if cfg.BackendType == "" {
		cfg.BackendType = os.Getenv("POLLBOOTH_BACKEND")
		if cfg.BackendType == "" {
			cfg.BackendType = BackendCSV
		}
	}
	if cfg.BackendType != BackendCSV && cfg.BackendType != BackendSQLite {
		return Config{}, errors.New("backend type must be csv or sqlite")
	}

	if cfg.VoteLimit == 0 {
		if limitStr := os.Getenv("POLLBOOTH_VOTE_LIMIT"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				return Config{}, errors.New("invalid POLLBOOTH_VOTE_LIMIT env variable")
			}
			cfg.VoteLimit = limit
		} else {
			cfg.VoteLimit = 100 // default
		}
	}
	if cfg.VoteLimit < 0 {
		return Config{}, errors.New("vote limit must be positive")
	}

	return cfg, nil
}
