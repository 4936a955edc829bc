// Package models defines data structures shared across the application.
package models

import "fmt"

// Ticket represents a JIRA issue with the fields needed for display.
type Ticket struct {
	// Key is the full ticket identifier (e.g., "ABC-123")
	Key string

	// Summary is the ticket's summary field
	Summary string

	// Status is the name of the ticket's current workflow status
	Status string

	// Priority is the name of the ticket's priority
	Priority string

	// Assignee is the display name of the person the ticket is assigned to
	Assignee string

	// URL is the browse URL for the ticket
	URL string
}

// PullRequest represents a Bitbucket Server pull request associated with a commit.
type PullRequest struct {
	// ID is the repository-scoped pull request number
	ID int

	// Title is the pull request's title
	Title string

	// State is the pull request's state (e.g., "OPEN", "MERGED")
	State string

	// URL is the browse URL for the pull request
	URL string
}

// String renders the pull request in the form used by list output.
func (pr PullRequest) String() string {
	return fmt.Sprintf("PR #%d: %s [%s]", pr.ID, pr.Title, pr.State)
}

// RepositoryEndpoint addresses one repository on a Bitbucket Server instance.
// It is derived per remote-URL resolution and never persisted.
type RepositoryEndpoint struct {
	// Server is the hostname (with optional port) of the Bitbucket Server
	Server string

	// Project is the project key as it appeared in the remote URL. The
	// server is case-sensitive on project keys, so URLs built from an
	// endpoint always upper-case it.
	Project string

	// Repo is the repository slug
	Repo string
}

// Remote is one configured git remote of the local repository.
type Remote struct {
	Name string
	URL  string
}
