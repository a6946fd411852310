package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	nonDigits    = regexp.MustCompile(`\D`)
	mobileTen    = regexp.MustCompile(`^[6-9]\d{9}$`)
	mobileTwelve = regexp.MustCompile(`^91[6-9]\d{9}$`)
)

// ValidPhone reports whether phone is an Indian mobile number: 10 digits
// starting 6-9, optionally prefixed with country code 91. Formatting
// characters are stripped before matching.
func ValidPhone(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	switch len(cleaned) {
	case 10:
		return mobileTen.MatchString(cleaned)
	case 12:
		return mobileTwelve.MatchString(cleaned)
	}
	return false
}

// ValidEmail performs a syntax-only email check.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}
