// Command migrate applies the embedded schema migrations to a PostgreSQL
// database without starting the API server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"shopcatalog/internal/config"
	"shopcatalog/internal/database"
)

func main() {
	dsn := flag.String("dsn", "", "PostgreSQL connection string (default: built from POSTGRES_* variables)")
	seed := flag.Bool("seed", false, "insert development data after migrating")
	status := flag.Bool("status", false, "print migration status and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			slog.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		*dsn = cfg.DSN()
	}

	db, err := database.Connect(*dsn)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if *status {
		if err := database.Status(db); err != nil {
			slog.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}
}
