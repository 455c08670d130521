package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name     string
		password string
		errMsg   string
	}{
		{"all classes present", "SecurePass123!", ""},
		{"too short", "Sh0rt!x", "password must be at least 8 characters"},
		{"no uppercase", "securepass123!", "uppercase letter"},
		{"no lowercase", "SECUREPASS123!", "lowercase letter"},
		{"no number", "SecurePass!", "number"},
		{"no special character", "SecurePass123", "special character"},
		{"symbol counts as special", "MyP@ssw0rdx", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPasswordStrength_LengthOnly(t *testing.T) {
	rule := PasswordStrength{MinLength: 10}

	assert.NoError(t, rule.Validate("tencharact"))
	assert.Error(t, rule.Validate("short"))
}

func TestPasswordStrength_NonString(t *testing.T) {
	rule := PasswordStrength{MinLength: 1}

	err := rule.Validate(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user@mail.example.com",
		"user+tag@example.com",
		"first.last@example.com",
	}
	invalid := []string{
		"userexample.com",
		"user@",
		"@example.com",
		"user@example",
		"user @example.com",
	}

	for _, email := range valid {
		assert.NoError(t, Email.Validate(email), email)
	}
	for _, email := range invalid {
		assert.Error(t, Email.Validate(email), email)
	}
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("username"))
	assert.NoError(t, NoWhitespace.Validate("inner spaces ok"))
	assert.Error(t, NoWhitespace.Validate(" leading"))
	assert.Error(t, NoWhitespace.Validate("trailing "))
	assert.Error(t, NoWhitespace.Validate(" both "))
}

func TestHexColor(t *testing.T) {
	assert.NoError(t, HexColor.Validate("#ff8800"))
	assert.NoError(t, HexColor.Validate("#FFAA00"))
	assert.Error(t, HexColor.Validate("ff8800"), "missing hash")
	assert.Error(t, HexColor.Validate("#f80"), "short form")
	assert.Error(t, HexColor.Validate("#gg8800"), "non-hex characters")
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("marks the sentinel", func(t *testing.T) {
		wrapped := WrapValidationError(assert.AnError)

		require.Error(t, wrapped)
		assert.True(t, apperrors.Is(wrapped, apperrors.ErrInvalidInput))
		assert.Contains(t, wrapped.Error(), assert.AnError.Error())
	})
}
