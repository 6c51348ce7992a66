package utils

import (
	"regexp"
	"strings"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug turns free text into a URL-safe slug.
// "Полевые камни 2024" -> "2024", "My Rock Shelf" -> "my-rock-shelf".
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := multipleHyphens.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// IsValidSlug reports whether s is a museum slug: non-empty, lowercase
// letters, digits and hyphens only.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// IsValidUsername reports whether s is a profile username: non-empty,
// lowercase letters, digits, underscores and hyphens only.
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// UsernameFromEmail derives a default username from the local part of an
// email address. Returns "" when the local part is not slug-safe after
// normalization.
func UsernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	candidate := strings.ToLower(local)
	candidate = strings.ReplaceAll(candidate, ".", "_")
	if !IsValidUsername(candidate) {
		return ""
	}
	return candidate
}
