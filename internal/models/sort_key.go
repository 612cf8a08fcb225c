package models

// SortKey is the closed set of columns a caller may sort listings by.
// Unrecognized input parses to SortKeyDate, so a hostile sortBy parameter
// can never reach the ORDER BY clause as raw text.
type SortKey string

const (
	SortKeyDate         SortKey = "date"
	SortKeyQuantity     SortKey = "quantity"
	SortKeyCustomerName SortKey = "customer_name"
)

// SortOrder is the sort direction for listings
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// ParseSortKey maps an external sort key to a SortKey, falling back to
// SortKeyDate for anything outside the allow-list
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortKeyDate, SortKeyQuantity, SortKeyCustomerName:
		return SortKey(s)
	default:
		return SortKeyDate
	}
}

// ParseSortOrder maps an external sort direction, defaulting to DESC
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortOrderAsc {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// Column returns the column name a sort key orders by
func (k SortKey) Column() string {
	switch k {
	case SortKeyQuantity:
		return "quantity"
	case SortKeyCustomerName:
		return "customer_name"
	default:
		return "date"
	}
}
