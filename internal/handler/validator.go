package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/octobees/vendor-matching/internal/service/intent"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator registers the catalogue-backed "category" and "region"
// tags on top of the builtin rules.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := intent.ParseCategory(fl.Field().String())
		return ok
	})
	v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		_, ok := intent.ParseRegion(fl.Field().String())
		return ok
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// validationMessage turns the first failed rule into a client facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid payload"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "category":
		return fmt.Sprintf("unknown category %q", fe.Value())
	case "region":
		return fmt.Sprintf("unknown region %q", fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
