package services

import (
	"log/slog"
	"time"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// salesService coordinates sales data retrieval: it delegates querying to
// the repository and derives pagination metadata from the counts.
type salesService struct {
	repo    repositories.SalesRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewSalesService creates a new sales service
func NewSalesService(
	repo repositories.SalesRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SalesServiceInterface {
	return &salesService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// GetSalesData returns one page of matching rows plus pagination metadata.
// A page past the end of the result set returns an empty list, not an error.
func (s *salesService) GetSalesData(filters models.SalesFilters) ([]models.SalesTransaction, dto.Pagination, error) {
	normalizePaging(&filters)

	start := time.Now()
	transactions, total, err := s.repo.List(filters)
	if err != nil {
		s.metrics.RecordQuery("list", "error", time.Since(start))
		s.logger.Error("failed to list sales transactions",
			"error", err,
			"page", filters.Page,
			"limit", filters.Limit,
		)
		return nil, dto.Pagination{}, err
	}
	s.metrics.RecordQuery("list", "success", time.Since(start))

	pagination := dto.Pagination{
		Total:      total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages(total, filters.Limit),
	}

	return transactions, pagination, nil
}

// GetStatistics aggregates totals over the rows matching the filters,
// independently of any previous listing call.
func (s *salesService) GetStatistics(filters models.SalesFilters) (models.SalesStatistics, error) {
	start := time.Now()
	stats, err := s.repo.Statistics(filters)
	if err != nil {
		s.metrics.RecordQuery("statistics", "error", time.Since(start))
		s.logger.Error("failed to aggregate sales statistics", "error", err)
		return models.ZeroSalesStatistics(), err
	}
	s.metrics.RecordQuery("statistics", "success", time.Since(start))

	return stats, nil
}

// GetFilterOptions returns the full universe of selectable filter values,
// ignoring any active filter context.
func (s *salesService) GetFilterOptions() (models.FilterOptions, error) {
	start := time.Now()
	options, err := s.repo.FilterOptions()
	if err != nil {
		s.metrics.RecordQuery("filter-options", "error", time.Since(start))
		s.logger.Error("failed to enumerate filter options", "error", err)
		return models.FilterOptions{}, err
	}
	s.metrics.RecordQuery("filter-options", "success", time.Since(start))

	return options, nil
}

func normalizePaging(filters *models.SalesFilters) {
	if filters.Page < 1 {
		filters.Page = DefaultPage
	}
	if filters.Limit < 1 {
		filters.Limit = DefaultLimit
	}
	if filters.Limit > MaxLimit {
		filters.Limit = MaxLimit
	}
}

// totalPages is ceiling(total / limit) so a partially filled final page is
// still counted
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
