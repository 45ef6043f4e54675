package helpers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the "sluggable" tag registered: the
// field must contain at least one character that survives GenerateSlug.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("sluggable", func(fl validator.FieldLevel) bool {
		return GenerateSlug(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("register sluggable validation: %v", err))
	}
	return v
}

// FirstValidationMessage turns the first failed rule into a sentence fit for
// a flash notice.
func FirstValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationMessage(validationErrors[0])
	}
	return err.Error()
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
	case "sluggable":
		return fmt.Sprintf("%s must contain at least one letter or digit.", err.Field())
	default:
		return fmt.Sprintf("%s failed the %s check.", err.Field(), err.Tag())
	}
}
