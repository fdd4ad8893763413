package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.Output == nil || c.Filter == nil {
		c.applyDefaults()
	}

	if err := validate.Struct(c.Output); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "output")...)
	}
	if err := validate.Struct(c.Filter); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "filter")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML name, with [i] for slice elements
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
