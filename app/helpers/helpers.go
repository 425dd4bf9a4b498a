package helpers

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := SnakeCase(err.Field())
		label := FieldLabel(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", label)
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", label)
		case "url":
			errorMessages[field] = fmt.Sprintf("%s must be a valid URL.", label)
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", label, err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s may be at most %s.", label, err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s is invalid.", label)
		}
	}
	return errorMessages
}

// SnakeCase turns a struct field name into the matching form field name,
// e.g. CustomerID -> customer_id.
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FieldLabel turns a struct field name into a human label, e.g.
// CommissionRate -> "Commission rate".
func FieldLabel(s string) string {
	words := strings.Split(SnakeCase(s), "_")
	for i, word := range words {
		if word == "id" {
			words[i] = "ID"
		}
	}
	label := strings.Join(words, " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
