package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,min=1"`)
// - Implement Validate() error that runs validator.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path params, query params and the body into payload
// and validates it.
//
// Bind failures (malformed JSON, a non-numeric id) and rule violations both
// become a 400 *errs.HTTPError; rule violations carry field-level errors.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindMessage(err), false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError and friends: nothing field-specific to report.
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldName(e.Field()),
			Error: describe(e),
		})
	}

	return "Validation failed", fieldErrors
}

// describe turns a single rule violation into a user-facing message.
func describe(e validator.FieldError) string {
	isString := e.Kind() == reflect.String

	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		// min on a string is a length, on a number a value.
		if isString {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())

	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())

	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())

	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())

	case "e164":
		return "must be a valid phone number with country code"

	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fieldName(e.Field()), e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s: %s", fieldName(e.Field()), e.Tag())
	}
}
