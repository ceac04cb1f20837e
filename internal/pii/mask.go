// Package pii redacts personal identifiers from free text before it is
// sent to an external generator.
package pii

import "regexp"

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlRe   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+\b`)
	phoneRe = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?(?:\(?0\d{1,2}\)?[-.\s]?)?\d{3,4}[-.\s]?\d{4}\b`)
)

// Mask replaces emails, URLs, and phone numbers with bracketed
// placeholders. Substitution order matters: emails first, so the address
// part of a mailto-style URL is not left behind as a bare URL fragment.
func Mask(text string) string {
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = urlRe.ReplaceAllString(text, "[URL]")
	text = phoneRe.ReplaceAllString(text, "[PHONE]")
	return text
}
