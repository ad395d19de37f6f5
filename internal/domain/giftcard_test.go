package domain

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateGiftCardCode_Format(t *testing.T) {
	netflixCode := regexp.MustCompile(`^NETFLIX-[A-Z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		code := GenerateGiftCardCode("Netflix")
		if !netflixCode.MatchString(code) {
			t.Fatalf("code %q does not match expected format", code)
		}
	}
}

func TestGenerateGiftCardCode_NormalizesProductName(t *testing.T) {
	tests := []struct {
		product string
		prefix  string
	}{
		{"Netflix", "NETFLIX-"},
		{"netflix", "NETFLIX-"},
		{"  Spotify  ", "SPOTIFY-"},
		{"Xbox Game Pass", "XBOXGAMEPASS-"},
		{"Play-Station 5", "PLAYSTATION5-"},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			code := GenerateGiftCardCode(tt.product)
			if !strings.HasPrefix(code, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, code)
			}
		})
	}
}

func TestGenerateGiftCardCode_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateGiftCardCode("Steam")
		if seen[code] {
			t.Fatalf("duplicate code generated: %s", code)
		}
		seen[code] = true
	}
}
