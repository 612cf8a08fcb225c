package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sales-analytics/internal/config"
	"sales-analytics/internal/database"
	"sales-analytics/internal/importer"
	"sales-analytics/internal/repositories"
	"sales-analytics/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import <path-to-csv>")
		os.Exit(1)
	}

	path, err := filepath.Abs(os.Args[1])
	if err != nil {
		slog.Error("invalid file path", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	if _, err := os.Stat(path); err != nil {
		slog.Error("file not found", "path", path)
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	salesRepo, err := repositories.NewSalesRepository(db.DB)
	if err != nil {
		slog.Error("failed to create sales repository", "error", err)
		os.Exit(1)
	}

	imp := importer.New(salesRepo, services.NewNoopMetrics(), slog.Default(), cfg.Import.BatchSize)

	summary, err := imp.ImportFile(path)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import finished",
		"file", path,
		"inserted", summary.Inserted,
		"failed", summary.Failed,
	)

	if summary.Failed > 0 {
		// Partial success is an accepted outcome; signal it without failing
		fmt.Printf("Imported %d rows (%d failed)\n", summary.Inserted, summary.Failed)
		return
	}

	fmt.Printf("Imported %d rows\n", summary.Inserted)
}
