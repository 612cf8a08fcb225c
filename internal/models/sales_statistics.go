package models

import "github.com/shopspring/decimal"

// SalesStatistics holds aggregate totals over a filtered set of rows.
// All fields are zero (never null) when no rows match.
type SalesStatistics struct {
	TotalUnits    int64           `json:"total_units"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// ZeroSalesStatistics returns the statistics value for an empty match set
func ZeroSalesStatistics() SalesStatistics {
	return SalesStatistics{
		TotalUnits:    0,
		TotalAmount:   decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
}
