// Package bitbucket resolves git remotes to Bitbucket Server repositories
// and looks up the pull requests that introduced a commit.
package bitbucket

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tether-cli/tether/pkg/models"
)

// repoURLPattern both validates normalized remote URLs and defines the
// server/project/repo capture order used when building API and browse URLs.
// The two directions must stay byte-identical so a built URL always
// re-validates.
var repoURLPattern = regexp.MustCompile(`^https?://([^/]+)/(?:scm/)?([^/]+)/([^/]+)/?$`)

var gitSuffixPattern = regexp.MustCompile(`\.git$`)

const (
	apiPathTemplate     = "https://%s/rest/api/latest/projects/%s/repos/%s/commits/%s/pull-requests?start=0&limit=25"
	prURLTemplate       = "https://%s/projects/%s/repos/%s/pull-requests/%d"
	commitURLTemplate   = "https://%s/projects/%s/repos/%s/commits/%s"
	originRemoteName    = "origin"
	bitbucketNameMarker = "bitbucket"
)

// NormalizeRemoteURL strips a trailing ".git" and rewrites SSH-form remotes
// (user@host:path) to https form. Only the first ":" after the host becomes
// a path separator, so hosts with ports survive.
func NormalizeRemoteURL(remoteURL string) string {
	normalized := gitSuffixPattern.ReplaceAllString(strings.TrimSpace(remoteURL), "")

	if !strings.Contains(normalized, "://") {
		if user, rest, found := strings.Cut(normalized, "@"); found && !strings.Contains(user, "/") {
			normalized = "https://" + strings.Replace(rest, ":", "/", 1)
		}
	}

	return normalized
}

// ResolveEndpoint normalizes a raw git remote URL and validates it as a
// Bitbucket Server repository. A URL that does not match resolves to
// (zero, false): the remote simply is not a supported review server.
func ResolveEndpoint(remoteURL string) (models.RepositoryEndpoint, bool) {
	m := repoURLPattern.FindStringSubmatch(NormalizeRemoteURL(remoteURL))
	if m == nil {
		return models.RepositoryEndpoint{}, false
	}

	return models.RepositoryEndpoint{
		Server:  m[1],
		Project: m[2],
		Repo:    m[3],
	}, true
}

// SelectRemote picks the remote used for pull request lookups: a remote
// literally named "origin" wins, otherwise the first remote whose name
// contains "bitbucket" (case-insensitive).
func SelectRemote(remotes []models.Remote) (models.Remote, bool) {
	for _, remote := range remotes {
		if remote.Name == originRemoteName {
			return remote, true
		}
	}
	for _, remote := range remotes {
		if strings.Contains(strings.ToLower(remote.Name), bitbucketNameMarker) {
			return remote, true
		}
	}
	return models.Remote{}, false
}

// ResolveEndpointFromRemotes combines SelectRemote and ResolveEndpoint.
func ResolveEndpointFromRemotes(remotes []models.Remote) (models.RepositoryEndpoint, bool) {
	remote, ok := SelectRemote(remotes)
	if !ok {
		return models.RepositoryEndpoint{}, false
	}
	return ResolveEndpoint(remote.URL)
}

// CommitPullRequestsURL builds the API URL listing the pull requests that
// contain the given commit.
func CommitPullRequestsURL(endpoint models.RepositoryEndpoint, commitHash string) string {
	return fmt.Sprintf(apiPathTemplate, endpoint.Server, strings.ToUpper(endpoint.Project), endpoint.Repo, commitHash)
}

// PullRequestURL builds the browse URL for a pull request number.
func PullRequestURL(endpoint models.RepositoryEndpoint, prNumber int) string {
	return fmt.Sprintf(prURLTemplate, endpoint.Server, strings.ToUpper(endpoint.Project), endpoint.Repo, prNumber)
}

// CommitBrowseURL builds the browse URL for a commit, the last-resort
// target when no pull request can be resolved.
func CommitBrowseURL(endpoint models.RepositoryEndpoint, commitHash string) string {
	return fmt.Sprintf(commitURLTemplate, endpoint.Server, strings.ToUpper(endpoint.Project), endpoint.Repo, commitHash)
}
