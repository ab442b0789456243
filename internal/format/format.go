// Package format provides display formatting helpers shared by the CLI
// presentation layer.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var nonDigits = regexp.MustCompile(`\D`)

// Phone formats a Brazilian phone number as "(DD) NNNNN-NNNN" (mobile)
// or "(DD) NNNN-NNNN" (landline). Anything else is returned unchanged.
func Phone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")

	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return phone
	}
}

// DateTime formats a timestamp as "dd/mm/yyyy hh:mm" in local time.
func DateTime(t time.Time) string {
	return t.Local().Format("02/01/2006 15:04")
}

// DateShort formats a timestamp as "dd/mm/yyyy" in local time.
func DateShort(t time.Time) string {
	return t.Local().Format("02/01/2006")
}

// CEP formats a Brazilian postal code as "NNNNN-NNN". Anything else is
// returned unchanged.
func CEP(cep string) string {
	digits := nonDigits.ReplaceAllString(cep, "")
	if len(digits) == 8 {
		return digits[:5] + "-" + digits[5:]
	}
	return cep
}

// Truncate shortens text to maxLen runes, appending "..." when cut.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// Initials returns the uppercased initials of the first and last name
// parts, or a single initial for one-word names.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := []rune(parts[0])
	if len(parts) == 1 {
		return strings.ToUpper(string(first[0]))
	}
	last := []rune(parts[len(parts)-1])
	return strings.ToUpper(string(first[0]) + string(last[0]))
}

// Capitalize uppercases the first letter and lowercases the rest.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(strings.ToLower(text))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
