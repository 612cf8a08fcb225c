package dto

import (
	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// Pagination is the paging metadata returned alongside a sales listing.
// TotalPages uses ceiling division so a partially filled last page counts.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// SalesListResponse is the body of GET /api/sales
type SalesListResponse struct {
	Success    bool                      `json:"success"`
	Data       []models.SalesTransaction `json:"data"`
	Pagination Pagination                `json:"pagination"`
}

// StatisticsResponse is the body of GET /api/statistics
type StatisticsResponse struct {
	Success       bool            `json:"success"`
	TotalUnits    int64           `json:"total_units"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// FilterOptionsResponse is the body of GET /api/filter-options
type FilterOptionsResponse struct {
	Success        bool     `json:"success"`
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	Tags           []string `json:"tags"`
}

// TruncateResponse is the body of POST /api/admin/truncate
type TruncateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
