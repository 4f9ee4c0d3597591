// Package phone normalizes guest phone numbers into the key customers are de-duplicated by.
package phone

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const (
	minDigits = 6
	maxDigits = 15
)

// Normalize returns the E.164 form of raw, parsed with region as the default country.
// Numbers the library cannot parse fall back to their digits, keeping a leading plus.
func Normalize(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err == nil && phonenumbers.IsPossibleNumber(parsed) {
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}

	digits := Digits(raw)
	if strings.HasPrefix(raw, "+") && digits != "" {
		return "+" + digits
	}

	return digits
}

// Digits strips everything but 0-9 from raw.
func Digits(raw string) string {
	var builder strings.Builder

	for _, r := range raw {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// Plausible reports whether raw carries a digit count a real phone number can have.
func Plausible(raw string) bool {
	count := len(Digits(raw))

	return count >= minDigits && count <= maxDigits
}
