package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to the labels used on the website forms
var FieldLabels = map[string]string{
	"name":        "Ime i prezime",
	"email":       "Email",
	"phone":       "Telefon",
	"message":     "Poruka",
	"productName": "Proizvod",
	"productCode": "Šifra",
	"quantity":    "Količina",
	"subject":     "Tema",
}

// FieldsWithTag returns the fields that failed the given tag, in struct order.
func FieldsWithTag(err error, tag string) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	var fields []string
	for _, e := range validationErrors {
		if e.Tag() == tag {
			fields = append(fields, e.Field())
		}
	}
	return fields
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Obavezno polje", label)
	case "loose_email", "email":
		return fmt.Sprintf("%s: Email adresa nije ispravna", label)
	default:
		return fmt.Sprintf("%s: Neispravna vrijednost (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return formatCamelCase(field)
}

// formatCamelCase converts camelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
