// Package jira resolves the single JIRA query this tool needs: the tickets
// assigned to the current user.
package jira

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/tether-cli/tether/internal/config"
	"github.com/tether-cli/tether/internal/logging"
	"github.com/tether-cli/tether/internal/rest"
	"github.com/tether-cli/tether/pkg/models"
)

const (
	assignedJQL  = "assignee = currentUser() AND statusCategory != Done ORDER BY priority DESC"
	searchFields = "key,summary,status,priority,assignee"
)

// SearchService fetches assigned tickets from a JIRA server.
type SearchService struct {
	rest *rest.Client
}

// NewSearchService creates a SearchService with a default REST client.
func NewSearchService() *SearchService {
	return &SearchService{rest: rest.NewClient()}
}

// SearchAssigned returns the open tickets assigned to the current user,
// ordered by priority. Any failure (missing configuration, transport error,
// unparseable response) resolves to an empty slice.
func (s *SearchService) SearchAssigned(ctx context.Context, cfg *config.Config) []models.Ticket {
	apiRoot := strings.ReplaceAll(cfg.Jira.BaseURL, "/browse/", "")
	searchURL := apiRoot + "/rest/api/2/search?jql=" + url.QueryEscape(assignedJQL) + "&fields=" + searchFields

	body, ok := s.rest.Get(ctx, searchURL, cfg.Jira.Token)
	if !ok {
		return nil
	}

	return parseTickets(body, cfg.Jira.BaseURL)
}

// SearchAssignedAsync runs SearchAssigned on a background goroutine and
// delivers the finished list on the returned channel. Each call is an
// independent fetch; duplicate triggers are not coalesced.
func (s *SearchService) SearchAssignedAsync(ctx context.Context, cfg *config.Config) <-chan []models.Ticket {
	out := make(chan []models.Ticket, 1)
	go func() {
		defer close(out)
		out <- s.SearchAssigned(ctx, cfg)
	}()
	return out
}

type namedField struct {
	Name string `json:"name"`
}

type assigneeField struct {
	DisplayName string `json:"displayName"`
}

type issueFields struct {
	Summary  string         `json:"summary"`
	Status   *namedField    `json:"status"`
	Priority *namedField    `json:"priority"`
	Assignee *assigneeField `json:"assignee"`
}

type searchIssue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type searchResponse struct {
	Issues []searchIssue `json:"issues"`
}

// parseTickets maps the search payload to tickets. An issue without a key is
// dropped; a payload that does not decode at all yields an empty result.
func parseTickets(body []byte, baseURL string) []models.Ticket {
	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logging.Warn("failed to parse jira search response", "error", err)
		return nil
	}

	var tickets []models.Ticket
	for _, issue := range response.Issues {
		if issue.Key == "" {
			logging.Warn("skipping jira issue without key")
			continue
		}

		tickets = append(tickets, models.Ticket{
			Key:      issue.Key,
			Summary:  stringOrDefault(issue.Fields.Summary, "No Summary"),
			Status:   nameOrDefault(issue.Fields.Status, "Unknown"),
			Priority: nameOrDefault(issue.Fields.Priority, "None"),
			Assignee: assigneeOrDefault(issue.Fields.Assignee),
			URL:      baseURL + issue.Key,
		})
	}

	return tickets
}

func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func nameOrDefault(field *namedField, fallback string) string {
	if field == nil || field.Name == "" {
		return fallback
	}
	return field.Name
}

func assigneeOrDefault(assignee *assigneeField) string {
	if assignee == nil || assignee.DisplayName == "" {
		return "Unassigned"
	}
	return assignee.DisplayName
}
