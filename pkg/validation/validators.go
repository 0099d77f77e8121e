package validation

import (
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters in any script, digits, spaces and common name punctuation.
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// E.164-like: optional +, 7 to 15 digits.
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators installs the custom tags used by domain structs.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", validName)
	_ = v.RegisterValidation("valid_phone", validPhone)
	_ = v.RegisterValidation("no_emoji", noEmoji)
	_ = v.RegisterValidation("max_current_year", maxCurrentYear)
}

// validName accepts person and company names. Empty passes so the tag
// composes with omitempty and required.
func validName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func validPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// noEmoji rejects emoji and other symbol characters in text fields.
func noEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// maxCurrentYear bounds year fields such as education start years. The
// database cannot enforce a dynamic upper bound, so it lives here.
func maxCurrentYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year <= int64(time.Now().Year())
}
