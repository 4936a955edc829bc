// Package ticket extracts JIRA ticket keys from branch names and other
// free-form text.
package ticket

import (
	"regexp"
	"strings"
)

var (
	// keyPattern matches a bare ticket key like "ABC-123", case-sensitive.
	keyPattern = regexp.MustCompile(`[A-Z]+-[0-9]+`)

	// loosePattern additionally tolerates a conventional branch prefix and
	// lower-cased keys. Matches e.g. "feature/abc-123-description".
	loosePattern = regexp.MustCompile(`(?i)(?:feature/|bugfix/|hotfix/|release/)?([A-Z]+-\d+)`)
)

// Extract returns the first ticket key in s. The second return value is
// false when s contains no ticket-shaped substring; callers treat that as
// "not linkable", not as an error.
func Extract(s string) (string, bool) {
	key := keyPattern.FindString(s)
	return key, key != ""
}

// ExtractLoose matches case-insensitively, strips an optional conventional
// branch prefix and upper-cases the captured key.
func ExtractLoose(s string) (string, bool) {
	m := loosePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// FromBranch extracts the ticket key from the part of a branch name after
// its first "/" (e.g. "feature/ABC-123-login" -> "ABC-123").
func FromBranch(branch string) (string, bool) {
	_, suffix, found := strings.Cut(branch, "/")
	if !found {
		return "", false
	}
	return Extract(suffix)
}
