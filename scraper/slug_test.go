package scraper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"lowercase and hyphens", "Rajdhani Express", "rajdhani-express"},
		{"parentheses stripped", "Mumbai CSMT (Chhatrapati Shivaji)", "mumbai-csmt-chhatrapati-shivaji"},
		{"slash replaced", "Mail/Express", "mail-express"},
		{"ampersand spelled out", "Howrah & Sealdah", "howrah-and-sealdah"},
		{"disallowed runes dropped", "Shatabdi Exp. #12002!", "shatabdi-exp-12002"},
		{"hyphen runs collapsed", "a --- b", "a-b"},
		{"leading and trailing trimmed", " (x) ", "x"},
		{"empty input", "", ""},
		{"nothing survives", "()!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.expected, got)
			if got != "" {
				assert.Regexp(t, slugShape, got)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Test Express-12345",
		"Mumbai CSMT (Main)",
		"A & B / C",
		"already-a-slug",
		"",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", in)
	}
}
