// Package commitmsg decides whether and how a ticket reference is prepended
// to a commit message draft.
package commitmsg

import (
	"strings"

	"github.com/tether-cli/tether/internal/ticket"
)

// skipBranches are long-lived branches that never contribute a ticket
// reference to commit messages.
var skipBranches = map[string]struct{}{
	"main":    {},
	"master":  {},
	"develop": {},
	"dev":     {},
}

// Compose returns the commit message that should replace draft, given the
// current branch. The second return value reports whether the draft changed.
//
// An empty draft becomes "KEY\n\n". A non-empty draft gets the reference
// prepended unless it already contains the reference or already starts with
// the raw branch name. Branches in the skip set never modify the draft.
func Compose(branch, draft string) (string, bool) {
	if _, skip := skipBranches[branch]; skip {
		return draft, false
	}

	reference, ok := ticket.FromBranch(branch)
	if !ok {
		return draft, false
	}

	current := strings.TrimSpace(draft)

	if current == "" {
		return reference + "\n\n", true
	}

	if !strings.Contains(current, reference) && !strings.HasPrefix(current, branch) {
		return reference + "\n\n" + current, true
	}

	return draft, false
}
