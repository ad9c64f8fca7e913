package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Struct validates a struct using its `validate` tags and formats the
// first failure into a readable error.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", fieldError.Field())
		case "min":
			return fmt.Errorf("%s: value must be at least %s", fieldError.Field(), fieldError.Param())
		case "max":
			return fmt.Errorf("%s: value must be at most %s", fieldError.Field(), fieldError.Param())
		case "gte":
			return fmt.Errorf("%s: value must be >= %s", fieldError.Field(), fieldError.Param())
		case "lte":
			return fmt.Errorf("%s: value must be <= %s", fieldError.Field(), fieldError.Param())
		case "oneof":
			return fmt.Errorf("%s: value must be one of [%s]", fieldError.Field(), fieldError.Param())
		case "dive":
			continue
		default:
			return fmt.Errorf("%s: failed %s validation", fieldError.Field(), fieldError.Tag())
		}
	}
	return err
}
