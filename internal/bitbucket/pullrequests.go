package bitbucket

import (
	"context"
	"encoding/json"

	"github.com/tether-cli/tether/internal/config"
	"github.com/tether-cli/tether/internal/logging"
	"github.com/tether-cli/tether/internal/rest"
	"github.com/tether-cli/tether/pkg/models"
)

// Service looks up pull requests on a Bitbucket Server instance.
type Service struct {
	rest *rest.Client
}

// NewService creates a Service with a default REST client.
func NewService() *Service {
	return &Service{rest: rest.NewClient()}
}

// PullRequestsForCommit fetches the pull requests that contain commitHash.
// Every failure mode (blank token, transport error, unparseable response)
// resolves to an empty slice, never an error.
func (s *Service) PullRequestsForCommit(ctx context.Context, cfg *config.Config, endpoint models.RepositoryEndpoint, commitHash string) []models.PullRequest {
	apiURL := CommitPullRequestsURL(endpoint, commitHash)

	body, ok := s.rest.Get(ctx, apiURL, cfg.Bitbucket.Token)
	if !ok {
		return nil
	}

	return parsePullRequests(body, endpoint)
}

// PullRequestsForCommitAsync runs PullRequestsForCommit on a background
// goroutine and delivers the finished list on the returned channel.
func (s *Service) PullRequestsForCommitAsync(ctx context.Context, cfg *config.Config, endpoint models.RepositoryEndpoint, commitHash string) <-chan []models.PullRequest {
	out := make(chan []models.PullRequest, 1)
	go func() {
		defer close(out)
		out <- s.PullRequestsForCommit(ctx, cfg, endpoint, commitHash)
	}()
	return out
}

type prListResponse struct {
	Values []json.RawMessage `json:"values"`
}

type prElement struct {
	ID    *int    `json:"id"`
	Title *string `json:"title"`
	State *string `json:"state"`
}

// parsePullRequests maps the API payload to pull requests. A malformed
// element is skipped; a payload that does not decode at all yields empty.
func parsePullRequests(body []byte, endpoint models.RepositoryEndpoint) []models.PullRequest {
	var response prListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logging.Warn("failed to parse pull requests response", "error", err)
		return nil
	}

	var pullRequests []models.PullRequest
	for _, raw := range response.Values {
		var element prElement
		if err := json.Unmarshal(raw, &element); err != nil {
			logging.Warn("failed to parse individual pull request", "error", err)
			continue
		}
		if element.ID == nil || element.Title == nil || element.State == nil {
			logging.Warn("skipping pull request with missing fields")
			continue
		}

		pullRequests = append(pullRequests, models.PullRequest{
			ID:    *element.ID,
			Title: *element.Title,
			State: *element.State,
			URL:   PullRequestURL(endpoint, *element.ID),
		})
	}

	return pullRequests
}
