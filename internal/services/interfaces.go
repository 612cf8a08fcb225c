package services

import (
	"time"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/models"
)

// SalesServiceInterface defines the contract for sales query operations
type SalesServiceInterface interface {
	GetSalesData(filters models.SalesFilters) ([]models.SalesTransaction, dto.Pagination, error)
	GetStatistics(filters models.SalesFilters) (models.SalesStatistics, error)
	GetFilterOptions() (models.FilterOptions, error)
}

// MetricsRecorderInterface abstracts metrics recording for testability
type MetricsRecorderInterface interface {
	RecordQuery(operation, status string, duration time.Duration)
	RecordImportBatch(inserted, failed int)
}
