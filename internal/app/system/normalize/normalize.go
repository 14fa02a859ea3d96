// Package normalize provides helper functions for consistent string normalization
// of card input. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls so the builder form, the JSON API, card files
// and the renderer all agree on what a value means.
package normalize

import "strings"

// Text normalizes free display text (title, subtitle, trend value) by trimming whitespace.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// Variant normalizes a card variant by trimming whitespace and converting to lowercase.
func Variant(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Trend normalizes a trend direction by trimming whitespace and converting to lowercase.
func Trend(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IconName normalizes an icon registry name by trimming whitespace and converting to lowercase.
func IconName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Key normalizes a stored card key taken from a URL or query parameter.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
