// Package importer loads delimited sales exports into the fact table in
// fixed-size transactional batches. Row-level and batch-level failures are
// contained and counted; a partially imported file is a reported outcome,
// not an error.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
	"sales-analytics/internal/services"
)

const DefaultBatchSize = 100

// Summary reports the outcome of one import run
type Summary struct {
	Inserted int
	Failed   int
}

// Importer reads sales CSV files and persists them batch by batch
type Importer struct {
	repo      repositories.SalesRepositoryInterface
	metrics   services.MetricsRecorderInterface
	logger    *slog.Logger
	batchSize int
}

// New creates an importer. A batchSize below 1 falls back to the default.
func New(
	repo repositories.SalesRepositoryInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
	batchSize int,
) *Importer {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	return &Importer{
		repo:      repo,
		metrics:   metrics,
		logger:    logger,
		batchSize: batchSize,
	}
}

// ImportFile imports the CSV file at path
func (i *Importer) ImportFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	i.logger.Info("starting CSV import", "file", path, "batch_size", i.batchSize)

	return i.Import(f)
}

// Import reads CSV data from r and inserts it in transactional batches.
// Rows that fail to map are logged and skipped; a batch whose insert fails
// is rolled back, its rows counted as failed, and the import continues.
func (i *Importer) Import(r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return Summary{}, fmt.Errorf("import file is empty")
	}
	if err != nil {
		return Summary{}, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(colIndex)
	for idx, cell := range header {
		name := strings.TrimSpace(cell)
		if name != "" {
			cols[name] = idx
		}
	}

	if !cols.matchesAny() {
		return Summary{}, fmt.Errorf("csv header matches no known sales columns")
	}

	var summary Summary
	batch := make([]models.SalesTransaction, 0, i.batchSize)
	rowNum := 1

	flush := func() {
		if len(batch) == 0 {
			return
		}

		if err := i.repo.CreateBatch(batch); err != nil {
			i.logger.Error("batch insert failed, skipping batch",
				"rows", len(batch),
				"error", err,
			)
			summary.Failed += len(batch)
			i.metrics.RecordImportBatch(0, len(batch))
		} else {
			summary.Inserted += len(batch)
			i.metrics.RecordImportBatch(len(batch), 0)
			i.logger.Info("inserted batch", "rows", len(batch), "total_inserted", summary.Inserted)
		}

		batch = batch[:0]
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++

		if err != nil {
			i.logger.Warn("skipping unreadable row", "row", rowNum, "error", err)
			summary.Failed++
			i.metrics.RecordImportBatch(0, 1)
			continue
		}

		tx, err := mapRow(cols, record)
		if err != nil {
			i.logger.Warn("skipping row that failed to map", "row", rowNum, "error", err)
			summary.Failed++
			i.metrics.RecordImportBatch(0, 1)
			continue
		}

		batch = append(batch, tx)
		if len(batch) >= i.batchSize {
			flush()
		}
	}

	flush()

	i.logger.Info("import completed",
		"inserted", summary.Inserted,
		"failed", summary.Failed,
	)

	return summary, nil
}
