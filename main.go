package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/tigee1311/sdoh-intake/catalog"
	"github.com/tigee1311/sdoh-intake/cliparse"
	"github.com/tigee1311/sdoh-intake/db"
	"github.com/tigee1311/sdoh-intake/middleware"
	"github.com/tigee1311/sdoh-intake/router"
	"github.com/tigee1311/sdoh-intake/sink"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	reg := catalog.Default()

	// Open the configured storage backend
	var store sink.Sink
	switch cfg.Storage {
	case "file":
		store, err = sink.NewFileSink(cfg.DataDir, reg)
		if err != nil {
			slog.Error("file sink setup failed", "error", err, "dir", cfg.DataDir)
			os.Exit(1)
		}
	default:
		driver := cfg.Storage // "sqlite" or "postgres"
		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if driver == "sqlite" {
			// modernc sqlite serializes writes; a single connection
			// avoids SQLITE_BUSY under concurrent submissions.
			dbConn.SetMaxOpenConns(1)
		}

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn, driver); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "driver", driver)

		store = sink.NewSQLSink(dbConn, driver, reg)
	}
	defer store.Close()

	// Create router
	mux := router.NewRouter(reg, store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "questions", reg.Len())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
