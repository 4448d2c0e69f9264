package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validate hook
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports json field names
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validate.Struct(i); err != nil {
		return errors.New(FormatValidationError(err))
	}
	return nil
}

// FormatValidationError turns validator errors into one readable line
func FormatValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field '%s' is required", e.Field()))
		case "url":
			messages = append(messages, fmt.Sprintf("field '%s' must be a valid URL", e.Field()))
		case "startswith":
			messages = append(messages, fmt.Sprintf("field '%s' must start with '%s'", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}
