// Package validate performs client-side validation of form drafts
// before they are dispatched to the backend. Validation failures never
// reach the network.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	hasDigit  = regexp.MustCompile(`\d`)
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasSymbol = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonDigits = regexp.MustCompile(`\D`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Brazilian phone: 10 or 11 digits once formatting is stripped.
	_ = val.RegisterValidation("phone_br", func(fl validator.FieldLevel) bool {
		digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
		return len(digits) >= 10 && len(digits) <= 11
	})

	// At least 8 characters with at least one letter and one digit.
	_ = val.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		return len(pw) >= 8 && hasDigit.MatchString(pw) && hasLetter.MatchString(pw)
	})

	return val
}

// FieldError describes a single failed field.
type FieldError struct {
	Field   string
	Message string
}

// FormError aggregates the failed fields of one form draft.
type FormError struct {
	Fields []FieldError
}

// Error implements the error interface, joining per-field messages.
func (e *FormError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Form validates a form draft struct against its validate tags.
func Form(form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	formErr := &FormError{}
	for _, fe := range verrs {
		formErr.Fields = append(formErr.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return formErr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date/time", fe.Field())
	case "phone_br":
		return fmt.Sprintf("%s must be a valid phone number", fe.Field())
	case "password":
		return fmt.Sprintf("%s must have at least 8 characters including a letter and a digit", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Email validates a single email address.
func Email(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if v.Var(email, "email") != nil {
		return errors.New("email is invalid")
	}
	return nil
}

// Password validates password strength requirements.
func Password(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if v.Var(password, "password") != nil {
		return errors.New("password must have at least 8 characters including a letter and a digit")
	}
	return nil
}

// PasswordMatch checks the confirmation field of the register form.
func PasswordMatch(password, confirm string) error {
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}

// Phone validates a phone number.
func Phone(phone string) error {
	if phone == "" {
		return errors.New("phone is required")
	}
	if v.Var(phone, "phone_br") != nil {
		return errors.New("phone is invalid")
	}
	return nil
}

// Strength is a coarse password strength bucket.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordStrength scores a password for the register form's strength
// meter. One point each for length >= 8, length >= 12, lowercase,
// uppercase, digit, and symbol.
func PasswordStrength(password string) (Strength, int) {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0 {
		score++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
		score++
	}
	if hasDigit.MatchString(password) {
		score++
	}
	if hasSymbol.MatchString(password) {
		score++
	}

	switch {
	case score <= 2:
		return StrengthWeak, score
	case score <= 4:
		return StrengthMedium, score
	default:
		return StrengthStrong, score
	}
}
