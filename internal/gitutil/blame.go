package gitutil

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// blameHeaderPattern matches the per-line header of porcelain blame output:
// "<40-hex sha> <original line> <final line> [<group size>]".
var blameHeaderPattern = regexp.MustCompile(`^([0-9a-f]{40}) \d+ (\d+)(?: \d+)?$`)

// BlameAnnotation is a file annotation: a map from line numbers to the
// revision that last changed them.
type BlameAnnotation struct {
	revisions map[int]string
}

// NewBlameAnnotation runs git blame for file (relative to dir) and parses
// the porcelain output into an annotation.
func NewBlameAnnotation(dir, file string) (*BlameAnnotation, error) {
	out, err := exec.Command("git", "-C", dir, "blame", "--porcelain", "--", file).Output()
	if err != nil {
		return nil, fmt.Errorf("git blame: %w", err)
	}
	return parseBlame(string(out)), nil
}

// parseBlame extracts the line-to-revision map. Blame reports 1-based line
// numbers; the annotation is keyed zero-based to match editor line context.
func parseBlame(raw string) *BlameAnnotation {
	revisions := make(map[int]string)
	for _, line := range strings.Split(raw, "\n") {
		m := blameHeaderPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		finalLine, err := strconv.Atoi(m[2])
		if err != nil || finalLine < 1 {
			continue
		}
		revisions[finalLine-1] = m[1]
	}
	return &BlameAnnotation{revisions: revisions}
}

// LineRevision returns the revision bound to a zero-based line number.
func (a *BlameAnnotation) LineRevision(line int) (string, bool) {
	revision, ok := a.revisions[line]
	return revision, ok
}
