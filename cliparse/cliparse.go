package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	Storage     string // "sqlite", "postgres", or "file"
	DatabaseURL string
	DataDir     string
	DownloadKey string
}

// ParseFlags validates flags and fills the configuration, falling back to
// environment variables flag by flag.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("sdoh-intake", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Storage, "s", "", "Storage driver (sqlite, postgres, or file)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite DSN or postgres connection string)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Data directory for the file sink")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.DownloadKey, "download-key", "", "Shared secret for export downloads (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3640 // default
		}
	}

	if cfg.Storage == "" {
		cfg.Storage = os.Getenv("STORAGE_DRIVER")
		if cfg.Storage == "" {
			cfg.Storage = "sqlite"
		}
	}
	switch cfg.Storage {
	case "sqlite", "postgres", "file":
	default:
		return Config{}, errors.New("storage driver must be sqlite, postgres, or file")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.Storage == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:sdoh.db" // sqlite default
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "data"
		}
	}

	// Secrets - MUST be provided
	if cfg.DownloadKey == "" {
		cfg.DownloadKey = os.Getenv("DOWNLOAD_KEY")
	}
	if cfg.DownloadKey == "" {
		return Config{}, errors.New("DOWNLOAD_KEY required")
	}

	return cfg, nil
}
