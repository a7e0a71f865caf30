package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxLabelLength bounds labels read from untrusted sources such as
// imported session files.
const maxLabelLength = 256

// ValidateLabel validates a block label read from outside the process.
// Labels are printed verbatim to terminals, so the rules reject anything
// that could move the cursor or inject escape sequences:
//   - Maximum length of 256 characters
//   - No control characters (this includes ESC and newlines)
//
// Empty labels are allowed; the renderer substitutes a positional name.
func ValidateLabel(label string) error {
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateFormat checks that format is one of allowed (case-sensitive).
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateRange checks that a numeric setting lies within [lo, hi].
func ValidateRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}
