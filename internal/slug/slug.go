package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugRunesPat = regexp.MustCompile(`[^a-z0-9]+`)
)

func Valid(value string) bool {
	return slugPattern.MatchString(value)
}

// Normalize trims whitespace, lowercases the value, and ensures it matches
// the canonical URL-safe slug pattern.
func Normalize(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errors.New("slug is required")
	}

	normalized := strings.ToLower(trimmed)
	if !Valid(normalized) {
		return "", fmt.Errorf("invalid slug %q: must match %s", input, slugPattern.String())
	}

	return normalized, nil
}

// Generate derives a slug from display text, folding accents to their base letters.
func Generate(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "'", "")
	folded = strings.ReplaceAll(folded, "’", "")
	folded = nonSlugRunesPat.ReplaceAllString(folded, "-")

	return strings.Trim(folded, "-")
}
