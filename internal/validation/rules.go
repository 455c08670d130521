// Package validation provides the custom request validation rules shared by
// the HTTP DTOs.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// hexColorRegex matches CSS-style hex colors like #1a2b3c
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// WrapValidationError marks a validation failure as ErrInvalidInput so the
// error mapper renders it as 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates that a password meets the configured character
// class requirements.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// Validate implements validation.Rule. The first unmet requirement is
// reported; requirements are checked in a fixed order so the message is
// deterministic.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			"password must be at least "+strconv.Itoa(p.MinLength)+" characters",
		)
	}

	requirements := []struct {
		enabled bool
		class   func(rune) bool
		code    string
		message string
	}{
		{p.RequireUpper, unicode.IsUpper, "validation_password_uppercase",
			"password must contain at least one uppercase letter"},
		{p.RequireLower, unicode.IsLower, "validation_password_lowercase",
			"password must contain at least one lowercase letter"},
		{p.RequireNumber, unicode.IsNumber, "validation_password_number",
			"password must contain at least one number"},
		{p.RequireSpecial, isSpecial, "validation_password_special",
			"password must contain at least one special character"},
	}

	for _, req := range requirements {
		if req.enabled && !strings.ContainsFunc(s, req.class) {
			return validation.NewError(req.code, req.message)
		}
	}

	return nil
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Email validates email format.
var Email = validation.NewStringRuleWithError(
	emailRegex.MatchString,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NoWhitespace rejects strings with leading or trailing whitespace.
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// HexColor validates CSS-style hex color strings (e.g., "#ff8800").
var HexColor = validation.NewStringRuleWithError(
	hexColorRegex.MatchString,
	validation.NewError("validation_hex_color", "must be a hex color like #rrggbb"),
)
