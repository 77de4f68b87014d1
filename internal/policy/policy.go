// Package policy decides which raw identity lines from git history take part
// in a contributor check.
package policy

import (
	"strings"

	"github.com/contribcheck/contribcheck/internal/identity"
	"github.com/contribcheck/contribcheck/internal/logging"
)

// builtinDenied substrings are always rejected, independent of configuration.
// This also rejects human contributors whose name or email happens to contain
// "bot" (e.g. a surname like Bothwell); known limitation, kept deliberately.
var builtinDenied = []string{"bot", "dependabot"}

// Policy holds the configurable ignore lists applied to raw identity lines.
type Policy struct {
	// IgnoreEmails are exact matches against the bracketed email component.
	IgnoreEmails []string
	// IgnoreLogins are case-insensitive substring matches against the whole line.
	IgnoreLogins []string
}

// ShouldInclude reports whether a raw identity line survives filtering.
func (p Policy) ShouldInclude(line string) bool {
	if email, ok := identity.Email(line); ok {
		for _, ignored := range p.IgnoreEmails {
			if email == ignored {
				return false
			}
		}
	}

	lower := strings.ToLower(line)
	for _, login := range p.IgnoreLogins {
		if login != "" && strings.Contains(lower, strings.ToLower(login)) {
			return false
		}
	}

	for _, denied := range builtinDenied {
		if strings.Contains(lower, denied) {
			return false
		}
	}
	return true
}

// Collect applies the policy to raw git log lines and returns the surviving
// identities. Lines are trimmed and empty lines dropped; survivors keep their
// exact original spelling, normalization happens only during reconciliation.
func Collect(lines []string, p Policy) identity.Set {
	log := logging.Default()
	set := identity.NewSet()
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !p.ShouldInclude(line) {
			log.Debug().Str("identity", line).Msg("filtered out by policy")
			continue
		}
		set.Add(line)
	}
	return set
}
