package resources

import "strings"

// defaultCountryCode is prefixed onto bare 10-digit numbers
const defaultCountryCode = "91"

// NormalizePhone canonicalizes a phone number to +<countrycode><digits>
// before submission. A number already carrying a +<cc> prefix is not
// double-prefixed; separators and a single leading trunk zero are
// stripped. Input that does not look like a phone number is returned
// unchanged for the server to reject.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(trimmed, "+")
	digits := stripSeparators(trimmed)

	if hasPlus {
		if digits == "" {
			return trimmed
		}
		return "+" + digits
	}

	// Trunk prefix, e.g. 09876543210
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	switch {
	case len(digits) == 10:
		return "+" + defaultCountryCode + digits
	case len(digits) == 12 && strings.HasPrefix(digits, defaultCountryCode):
		return "+" + digits
	default:
		return trimmed
	}
}

// stripSeparators removes spaces, dashes, dots and parentheses, keeping
// digits only
func stripSeparators(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
