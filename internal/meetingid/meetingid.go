// Package meetingid implements the canonical and display forms of meeting identifiers.
// The canonical form is a 10-digit numeric string with no separators and is the only
// form used for storage and comparison. The display form groups digits 3-3-4 with
// hyphens for readability.
package meetingid

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// CanonicalLength is the exact digit count of a canonical meeting id.
const CanonicalLength = 10

// ID is a canonical meeting identifier.
type ID string

// ErrInvalid is returned by Validate with a user-friendly message.
var ErrInvalid = errors.New("meeting id must be exactly 10 digits")

// Generate produces a uniformly random meeting id. Collisions are tolerated upstream,
// this is a unique-enough scheme rather than a cryptographic one.
func Generate() ID {
	const digits = "0123456789"
	b := make([]byte, CanonicalLength)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return ID(b)
}

// ToDisplay renders a canonical id as XXX-XXX-XXXX. Input that is not exactly
// 10 characters is returned unchanged.
func ToDisplay(id ID) string {
	s := string(id)
	if len(s) != CanonicalLength {
		return s
	}
	return s[:3] + "-" + s[3:6] + "-" + s[6:]
}

// ToCanonical removes hyphen separators. It performs no length validation.
func ToCanonical(display string) string {
	return strings.ReplaceAll(display, "-", "")
}

// Validate strips separators from candidate and returns the canonical id, or an error
// if the stripped result is not exactly 10 characters parseable as an unsigned integer.
func Validate(candidate string) (ID, error) {
	s := ToCanonical(candidate)
	if len(s) != CanonicalLength {
		return "", fmt.Errorf("%w (got %d)", ErrInvalid, len(s))
	}
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return "", ErrInvalid
	}
	return ID(s), nil
}

// FormatInput reformats live text entry: everything but digits is dropped, the
// result is truncated to the first 10 digits and regrouped, and the cursor is placed
// at the end of the formatted text. Formatting already-formatted text yields the
// same text.
func FormatInput(text string) (formatted string, cursor int) {
	var b strings.Builder
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == CanonicalLength {
			break
		}
	}
	s := b.String()
	switch {
	case len(s) <= 3:
		formatted = s
	case len(s) <= 6:
		formatted = s[:3] + "-" + s[3:]
	default:
		formatted = s[:3] + "-" + s[3:6] + "-" + s[6:]
	}
	return formatted, len(formatted)
}
