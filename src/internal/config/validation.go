package config

import (
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/ip2networkd/src/internal/networkd"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "glob":
		return "must be a valid glob pattern"
	case "header_template":
		return "must be a valid template using only {{ifname}}, {{mac}} and {{link_type}}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "output.file_mode", "filter.exclude_interfaces[0]")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("glob", validateGlob); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("header_template", validateHeaderTemplate); err != nil {
		panic(err)
	}

	// Report fields by their TOML names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: path.Match pattern
func validateGlob(fl validator.FieldLevel) bool {
	_, err := path.Match(fl.Field().String(), "")
	return err == nil
}

// Custom validator: unit header template
func validateHeaderTemplate(fl validator.FieldLevel) bool {
	return networkd.ValidateHeaderTemplate(fl.Field().String()) == nil
}
