package validators

import "strings"

// Length limits for the storefront's free-text form fields.
const (
	MaxNameLen    = 120
	MaxEmailLen   = 120
	MaxPhoneLen   = 30
	MaxAddressLen = 300
	MaxMethodLen  = 40
	MaxNotesLen   = 500
)

// SanitizeString trims surrounding whitespace and caps the input at maxLen
// runes. Truncation counts runes, not bytes, so multi-byte characters in
// names and addresses are never split.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return trimmed
}
