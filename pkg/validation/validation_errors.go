package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Company fields
	"Name":            "Company name",
	"CEOName":         "CEO name",
	"Industry":        "Industry",
	"BusinessType":    "Business type",
	"SizeBucket":      "Company size",
	"Location":        "Location",
	"Website":         "Website",
	"Description":     "Description",
	"ContactName":     "Contact person",
	"ContactPosition": "Contact position",
	"ContactPhone":    "Contact phone",

	// Job seeker profile fields
	"Skills":      "Skills",
	"Languages":   "Languages",
	"Experiences": "Work experience",
	"Educations":  "Education",
	"Motivation":  "Motivation",
	"Personality": "Personality",
	"Aspiration":  "Aspiration",

	// Portfolio fields
	"Speciality": "Speciality",

	// Job fields
	"Title":     "Job title",
	"SalaryMin": "Minimum salary",
	"SalaryMax": "Maximum salary",

	// Inquiry fields
	"JobSeekerID": "Job seeker",
	"Position":    "Proposed position",
	"Message":     "Message",

	// Auth fields
	"Email": "Email",
	"Role":  "Role",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// Summary joins all validation messages into one line for error responses
func Summary(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation (. ' - /)", label)

	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number (7-15 digits, with or without +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s may not contain emoji or special symbols", label)

	case "max_current_year":
		return fmt.Sprintf("%s may not be later than the current year", label)

	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", label, getFieldLabel(param))

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
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
