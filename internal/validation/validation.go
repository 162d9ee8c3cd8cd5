// Package validation checks service request structs against their
// `validate` tags and reports the first failure as a models.ErrValidation.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/blogdb/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes the first struct field that failed validation
type FieldError struct {
	Field string // Go struct field name
	Tag   string // failed rule, e.g. "required"
	Param string // rule parameter, e.g. "0" for gte=0
}

func (e *FieldError) Error() string {
	field := strings.ToLower(e.Field)
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is not set", field, strings.ToLower(e.Param))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param, " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag)
	}
}

// Unwrap makes every FieldError match models.ErrValidation
func (e *FieldError) Unwrap() error {
	return models.ErrValidation
}

// Struct validates s. It returns nil, a *FieldError for the first failing
// field, or an error wrapping models.ErrValidation when s cannot be validated.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &FieldError{Field: fe.StructField(), Tag: fe.Tag(), Param: fe.Param()}
	}
	return fmt.Errorf("%w: %w", models.ErrValidation, err)
}

// Field returns the failing field name if err is a *FieldError
func Field(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
