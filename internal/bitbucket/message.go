package bitbucket

import (
	"regexp"
	"strconv"
)

// messageRefPatterns recognize inline pull request references in commit
// messages, most specific first. The first pattern with a numeric capture
// wins.
var messageRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)merged?\s+(?:pull request|pr)\s+#?(\d+)`),
	regexp.MustCompile(`(?i)pull request\s+#?(\d+)`),
	regexp.MustCompile(`(?i)\bpr\s+#?(\d+)`),
}

// ExtractMessageReference scans a commit message for an inline pull request
// reference such as "Merged pull request #42" or "PR #42". It returns the
// referenced number, or false when the message carries no reference.
func ExtractMessageReference(message string) (int, bool) {
	for _, pattern := range messageRefPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return number, true
	}
	return 0, false
}
