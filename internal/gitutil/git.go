// Package gitutil reads the pieces of local git state the resolution engine
// consumes: the current branch, the configured remotes, per-line blame
// annotations and commit messages.
package gitutil

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tether-cli/tether/pkg/models"
)

// CurrentBranch returns the checked-out branch name of the repository at dir.
func CurrentBranch(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HeadCommit returns the full hash of HEAD.
func HeadCommit(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Remotes returns the configured remotes of the repository at dir.
func Remotes(dir string) ([]models.Remote, error) {
	out, err := exec.Command("git", "-C", dir, "remote", "-v").Output()
	if err != nil {
		return nil, fmt.Errorf("git remote: %w", err)
	}
	return parseRemotes(string(out)), nil
}

// parseRemotes reads "git remote -v" output, keeping one entry per remote
// from its fetch line.
func parseRemotes(raw string) []models.Remote {
	var remotes []models.Remote
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if len(fields) >= 3 && fields[2] != "(fetch)" {
			continue
		}
		remotes = append(remotes, models.Remote{Name: fields[0], URL: fields[1]})
	}
	return remotes
}

// CommitMessage returns the full message body of a commit.
func CommitMessage(dir, commitHash string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "log", "-1", "--format=%B", commitHash).Output()
	if err != nil {
		return "", fmt.Errorf("git log: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
