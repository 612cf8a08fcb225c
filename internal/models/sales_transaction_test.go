package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountGiven(t *testing.T) {
	tx := SalesTransaction{
		TotalAmount: decimal.NewFromFloat(149.70),
		FinalAmount: decimal.NewFromFloat(134.73),
	}

	assert.True(t, tx.DiscountGiven().Equal(decimal.NewFromFloat(14.97)))
}

func TestDiscountGiven_NoDiscount(t *testing.T) {
	tx := SalesTransaction{
		TotalAmount: decimal.NewFromFloat(100),
		FinalAmount: decimal.NewFromFloat(100),
	}

	assert.True(t, tx.DiscountGiven().IsZero())
}

func TestHasActiveDimensions(t *testing.T) {
	age := 30
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		filters SalesFilters
		want    bool
	}{
		{"empty", SalesFilters{}, false},
		{"paging only", SalesFilters{Page: 3, Limit: 50, SortBy: SortKeyDate}, false},
		{"search", SalesFilters{Search: "ana"}, true},
		{"regions", SalesFilters{Regions: []string{"North"}}, true},
		{"tags", SalesFilters{Tags: []string{"premium"}}, true},
		{"age bound", SalesFilters{AgeMax: &age}, true},
		{"date bound", SalesFilters{StartDate: &date}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filters.HasActiveDimensions())
		})
	}
}
