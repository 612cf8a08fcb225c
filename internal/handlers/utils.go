package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-analytics/internal/errors"
	"sales-analytics/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// salesFilterParams is the transport shape of the listing query string.
// Everything binds as a string so malformed input reaches validation
// instead of failing inside the binder.
type salesFilterParams struct {
	Search         string `query:"search"`
	Regions        string `query:"regions"`
	Genders        string `query:"genders"`
	Categories     string `query:"categories"`
	Tags           string `query:"tags"`
	PaymentMethods string `query:"paymentMethods"`
	AgeMin         string `query:"ageMin"`
	AgeMax         string `query:"ageMax"`
	StartDate      string `query:"startDate" validate:"iso_date"`
	EndDate        string `query:"endDate" validate:"iso_date"`
	SortBy         string `query:"sortBy" validate:"sort_key"`
	SortOrder      string `query:"sortOrder" validate:"sort_order"`
	Page           string `query:"page"`
	Limit          string `query:"limit"`
}

// filterParseError carries the error code for a malformed filter parameter
// so handlers can map it straight to a response
type filterParseError struct {
	code   errors.ErrorCode
	detail string
}

func (e *filterParseError) Error() string {
	return e.detail
}

// parseSalesFilters binds and validates the query string, then translates it
// into a filter specification. Malformed numeric or date input is rejected,
// never silently coerced into a wrong predicate. The returned error is
// either a *filterParseError or validator.ValidationErrors.
func parseSalesFilters(c echo.Context) (models.SalesFilters, error) {
	var params salesFilterParams
	if err := c.Bind(&params); err != nil {
		return models.SalesFilters{}, err
	}

	if err := c.Validate(&params); err != nil {
		if invalid := strictValidationErrors(err); invalid != nil {
			return models.SalesFilters{}, invalid
		}
	}

	filters := models.SalesFilters{
		Search:         strings.TrimSpace(params.Search),
		Regions:        splitListParam(params.Regions),
		Genders:        splitListParam(params.Genders),
		Categories:     splitListParam(params.Categories),
		Tags:           splitListParam(params.Tags),
		PaymentMethods: splitListParam(params.PaymentMethods),
		SortBy:         models.ParseSortKey(params.SortBy),
		SortOrder:      models.ParseSortOrder(params.SortOrder),
	}

	var err error
	if filters.AgeMin, err = parseOptionalInt(params.AgeMin, "ageMin"); err != nil {
		return models.SalesFilters{}, err
	}
	if filters.AgeMax, err = parseOptionalInt(params.AgeMax, "ageMax"); err != nil {
		return models.SalesFilters{}, err
	}
	if filters.StartDate, err = parseOptionalDate(params.StartDate, "startDate"); err != nil {
		return models.SalesFilters{}, err
	}
	if filters.EndDate, err = parseOptionalDate(params.EndDate, "endDate"); err != nil {
		return models.SalesFilters{}, err
	}

	if filters.Page, err = parsePositiveInt(params.Page, "page", 1, errors.FilterInvalidPage); err != nil {
		return models.SalesFilters{}, err
	}
	if filters.Limit, err = parsePositiveInt(params.Limit, "limit", 10, errors.FilterInvalidLimit); err != nil {
		return models.SalesFilters{}, err
	}

	return filters, nil
}

// strictValidationErrors drops the tolerated failures from a validation
// result. Unknown sort input falls back to the default ordering instead of
// failing the request; every other rule is strict.
func strictValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	strict := make(validator.ValidationErrors, 0, len(verrs))
	for _, fieldErr := range verrs {
		if fieldErr.Tag() == "sort_key" || fieldErr.Tag() == "sort_order" {
			continue
		}
		strict = append(strict, fieldErr)
	}

	if len(strict) == 0 {
		return nil
	}
	return strict
}

// sendFilterError maps a filter parsing failure onto the right response:
// typed parse errors carry their own code, validation errors go through the
// central error handler.
func sendFilterError(c echo.Context, err error) error {
	if parseErr, ok := err.(*filterParseError); ok {
		return SendError(c, parseErr.code, errors.WithMessage(parseErr.detail))
	}
	return err
}

// splitListParam splits a comma-separated query parameter into a value set,
// dropping empty entries
func splitListParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			values = append(values, value)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

// parseOptionalInt parses an optional integer parameter. An empty value is
// absent; zero is a present, valid value.
func parseOptionalInt(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &filterParseError{
			code:   errors.FilterInvalidNumber,
			detail: fmt.Sprintf("%s must be an integer, got %q", name, raw),
		}
	}
	return &value, nil
}

// parseOptionalDate parses an optional ISO date parameter. Inputs from
// parseSalesFilters already passed the iso_date rule; the failure branch
// covers direct callers.
func parseOptionalDate(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, &filterParseError{
			code:   errors.FilterInvalidDate,
			detail: fmt.Sprintf("%s must be a date in YYYY-MM-DD format, got %q", name, raw),
		}
	}
	return &value, nil
}

func parsePositiveInt(raw, name string, defaultValue int, code errors.ErrorCode) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, &filterParseError{
			code:   code,
			detail: fmt.Sprintf("%s must be a positive integer, got %q", name, raw),
		}
	}
	return value, nil
}
