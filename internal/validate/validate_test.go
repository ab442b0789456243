package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_ReportsMissingFields(t *testing.T) {
	type recordForm struct {
		Weight string `validate:"required"`
		Notes  string `validate:"required"`
	}

	err := Form(recordForm{Weight: "4.2"})
	require.Error(t, err)

	formErr, ok := err.(*FormError)
	require.True(t, ok)
	require.Len(t, formErr.Fields, 1)
	assert.Equal(t, "Notes", formErr.Fields[0].Field)
	assert.Contains(t, formErr.Fields[0].Message, "required")
}

func TestForm_Valid(t *testing.T) {
	type recordForm struct {
		Weight string `validate:"required"`
		Notes  string `validate:"required"`
	}

	assert.NoError(t, Form(recordForm{Weight: "4.2", Notes: "ok"}))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@b.com"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("validpass1"))
	assert.Error(t, Password(""))
	assert.Error(t, Password("short1"))
	assert.Error(t, Password("onlyletters"))
	assert.Error(t, Password("12345678"))
}

func TestPasswordMatch(t *testing.T) {
	assert.NoError(t, PasswordMatch("abc12345", "abc12345"))
	assert.Error(t, PasswordMatch("abc12345", "abc12346"))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("11987654321"))
	assert.NoError(t, Phone("(11) 98765-4321"))
	assert.NoError(t, Phone("1187654321"))
	assert.Error(t, Phone(""))
	assert.Error(t, Phone("12345"))
	assert.Error(t, Phone("123456789012"))
}

func TestPasswordStrength(t *testing.T) {
	strength, _ := PasswordStrength("abc")
	assert.Equal(t, StrengthWeak, strength)

	strength, _ = PasswordStrength("abcdefg1")
	assert.Equal(t, StrengthMedium, strength)

	strength, score := PasswordStrength("Abcdefgh1234!")
	assert.Equal(t, StrengthStrong, strength)
	assert.Equal(t, 6, score)
}
