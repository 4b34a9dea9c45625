// Package extract recovers structured values (email, phone, name) from free
// text. All functions are pure and never fail on malformed input; absence is
// signalled through the boolean return.
package extract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b|\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	namePrefixes = []string{
		"my name is ",
		"i am ",
		"i'm ",
		"name is ",
		"this is ",
		"name:",
	}
)

// Email returns the first email address found in text.
func Email(text string) (string, bool) {
	match := emailPattern.FindString(text)
	if match == "" {
		return "", false
	}
	// The domain part is case-insensitive.
	at := strings.LastIndex(match, "@")
	return match[:at+1] + strings.ToLower(match[at+1:]), true
}

// Phone returns the first phone number found in text with separators
// stripped, e.g. "555.123.4567" -> "5551234567".
func Phone(text string) (string, bool) {
	match := phonePattern.FindString(text)
	if match == "" {
		return "", false
	}
	match = strings.ReplaceAll(match, "-", "")
	match = strings.ReplaceAll(match, ".", "")
	return match, true
}

// Name strips common filler prefixes ("my name is", "i am", ...) and keeps
// up to the first three alphabetic tokens longer than one character, each
// capitalized.
func Name(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	lower := strings.ToLower(cleaned)
	for _, prefix := range namePrefixes {
		if idx := strings.Index(lower, prefix); idx >= 0 {
			cleaned = cleaned[:idx] + cleaned[idx+len(prefix):]
			lower = strings.ToLower(cleaned)
		}
	}

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 1 && isAlpha(word) {
			words = append(words, capitalize(word))
		}
		if len(words) == 3 {
			break
		}
	}
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, " "), true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
