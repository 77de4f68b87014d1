// Package identity handles contributor identity strings as they appear in
// git history and citation metadata: "Name" or "Name <email>".
package identity

import (
	"regexp"
	"strings"
)

// emailRE matches the angle-bracketed email component of an identity string.
// Emails never contain angle brackets themselves.
var emailRE = regexp.MustCompile(`<([^>]+)>`)

// Email extracts the bracketed email component of an identity string.
// The second return is false when the string carries no email.
func Email(s string) (string, bool) {
	m := emailRE.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Normalize reduces an identity string to its comparison key: the email
// component is stripped, whitespace runs collapse to single spaces, and the
// result is lowercased. Two identities refer to the same contributor iff
// their normalized forms are equal.
//
// Normalize is total and idempotent. It is deliberately not accent-insensitive;
// Unicode letters pass through with only their case folded.
func Normalize(s string) string {
	s = emailRE.ReplaceAllString(s, "")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
