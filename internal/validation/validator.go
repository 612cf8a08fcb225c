package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules for the
// sales filter parameters
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// validateSortKey accepts the listing sort allow-list; empty means default
func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "date", "quantity", "customer_name":
		return true
	default:
		// Unknown keys are tolerated upstream by falling back to date; the
		// rule exists for callers that want strict validation
		return false
	}
}

// validateSortOrder accepts ASC/DESC in either case; empty means default
func validateSortOrder(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "", "ASC", "DESC":
		return true
	default:
		return false
	}
}

// validateISODate accepts an empty value or a YYYY-MM-DD date
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
