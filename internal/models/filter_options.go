package models

// FilterOptions is the full universe of selectable values for each
// categorical filter dimension, ignoring any active filters. Each slice is
// sorted ascending and contains only distinct non-null values.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	Tags           []string `json:"tags"`
}
