package validation

import (
	"regexp"
	"strings"
)

var (
	// runs of whitespace (any Unicode separator, vertical tab, BOM) and ampersands collapse into a single hyphen
	slugSeparatorRegex = regexp.MustCompile(`[&\s\v\p{Z}\x{FEFF}]+`)
	// anything outside ASCII word chars, hyphen and the Bengali block is dropped
	slugInvalidRegex = regexp.MustCompile(`[^\w\x{0980}-\x{09FF}-]+`)
	slugRegex        = regexp.MustCompile(`^[a-z0-9_\x{0980}-\x{09FF}-]+$`)
)

// GenerateSlug derives a URL-safe slug suggestion from a display name.
// The result is only a suggestion: callers may edit it and it still has to be unique.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugSeparatorRegex.ReplaceAllString(slug, "-")
	return slugInvalidRegex.ReplaceAllString(slug, "")
}

// IsValidSlug reports whether s only contains lowercase ASCII word characters,
// hyphens and Bengali characters
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}
