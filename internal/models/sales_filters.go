package models

import "time"

// SalesFilters contains the filtering, sorting and pagination options for
// sales queries. It is built per request and never shared between requests.
// Pointer fields distinguish "absent" from a legitimate zero value.
type SalesFilters struct {
	Search         string
	Regions        []string
	Genders        []string
	Categories     []string
	PaymentMethods []string
	Tags           []string
	AgeMin         *int
	AgeMax         *int
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         SortKey
	SortOrder      SortOrder
	Page           int
	Limit          int
}

// HasActiveDimensions reports whether any filter dimension is set
func (f *SalesFilters) HasActiveDimensions() bool {
	return f.Search != "" ||
		len(f.Regions) > 0 ||
		len(f.Genders) > 0 ||
		len(f.Categories) > 0 ||
		len(f.PaymentMethods) > 0 ||
		len(f.Tags) > 0 ||
		f.AgeMin != nil || f.AgeMax != nil ||
		f.StartDate != nil || f.EndDate != nil
}
