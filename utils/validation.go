package utils

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError flattens every field violation into one
// human-readable line, e.g. "price: must be a positive number, name: is required".
// Returns the original message for non-validator errors (malformed JSON etc.).
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, snakeCase(fe.Field())+": "+ruleMessage(fe))
	}
	return strings.Join(parts, ", ")
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be a positive number"
	case "uuid", "uuid4":
		return "must be a valid identifier"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	default:
		return "is invalid"
	}
}

// snakeCase maps Go field names to their JSON spelling, keeping acronym
// runs together ("ServiceID" -> "service_id").
func snakeCase(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			startsWord := i > 0 &&
				(!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1])))
			if startsWord {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
