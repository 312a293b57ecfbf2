package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tours/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator is the echo.Validator for request bodies. Failures are
// reported as errs.ValidationError keyed by JSON field name.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return errs.NewValidationErrorWithFields("Request validation failed", fields)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
