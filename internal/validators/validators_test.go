package validators

import "testing"

func TestIsEmail(t *testing.T) {
	for s, want := range map[string]bool{
		"staff@salon.com":         true,
		"new.user+tag@example.jp": true,
		"":                        false,
		"no-at-sign":              false,
		"Name <a@b.com>":          false,
		"a@":                      false,
	} {
		if got := IsEmail(s); got != want {
			t.Fatalf("IsEmail(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestIsDate(t *testing.T) {
	for s, want := range map[string]bool{
		"2024-01-25": true,
		"2024-02-30": false,
		"2024-1-5":   false,
		"25/01/2024": false,
	} {
		if got := IsDate(s); got != want {
			t.Fatalf("IsDate(%q) = %v, want %v", s, got, want)
		}
	}
}
