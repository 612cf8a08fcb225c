package repositories

import (
	"sales-analytics/internal/models"
)

// SalesRepositoryInterface defines the contract for sales data access
type SalesRepositoryInterface interface {
	// List returns one page of matching rows plus the total matching count
	List(filters models.SalesFilters) ([]models.SalesTransaction, int64, error)
	// Statistics aggregates quantity, amount and discount over matching rows
	Statistics(filters models.SalesFilters) (models.SalesStatistics, error)
	// FilterOptions returns the distinct values of each categorical dimension
	FilterOptions() (models.FilterOptions, error)
	// CreateBatch inserts rows atomically; all rows commit or none do
	CreateBatch(rows []models.SalesTransaction) error
	// Truncate empties the table; administrative use only
	Truncate() error
}
