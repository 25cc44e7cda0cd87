// Package validation wraps go-playground/validator with the application's
// field-level error messages.
package validation

import (
	"fmt"
	"strings"

	"devconnect/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s and translates failures into field errors. The messages
// map keys on the struct field name; fields without an entry fall back to
// "<field> is required".
func Struct(s any, messages map[string]string) []models.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, found := messages[fe.Field()]
		if !found {
			msg = fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
		}
		fields = append(fields, models.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: msg,
		})
	}
	return fields
}
