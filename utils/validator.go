package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries the per-field messages produced by ValidateStruct
// so handlers can return structured validation feedback.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return strings.Join(msgs, ", ")
}

// ValidateStruct validates a request struct against its validate tags and
// returns a *ValidationError describing every failing field.
func ValidateStruct(s interface{}) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			fields[field] = field + " is required"
		case "min":
			fields[field] = field + " must be at least " + param + " characters"
		case "max":
			fields[field] = field + " must be at most " + param + " characters"
		case "email":
			fields[field] = field + " must be a valid email"
		case "datetime":
			fields[field] = field + " must be a date in YYYY-MM-DD format"
		case "oneof":
			fields[field] = field + " must be one of: " + strings.ReplaceAll(param, " ", ", ")
		default:
			fields[field] = field + " is invalid"
		}
	}

	return &ValidationError{Fields: fields}
}
