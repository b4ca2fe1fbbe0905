package validators

import "testing"

func TestSanitizeStringTrims(t *testing.T) {
	if got := SanitizeString("  Jl. Merdeka No. 123  ", MaxAddressLen); got != "Jl. Merdeka No. 123" {
		t.Fatalf("expected trimmed address, got %q", got)
	}
}

func TestSanitizeStringTruncatesByRunes(t *testing.T) {
	if got := SanitizeString("Soté Ayam", 4); got != "Soté" {
		t.Fatalf("expected rune-safe cut, got %q", got)
	}
}

func TestSanitizeStringZeroLimitKeepsAll(t *testing.T) {
	input := "Warung Jawa Timur"
	if got := SanitizeString(input, 0); got != input {
		t.Fatalf("zero limit should keep the whole value, got %q", got)
	}
}
