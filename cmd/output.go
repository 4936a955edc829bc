package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tether-cli/tether/pkg/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	keyStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const summaryWidth = 60

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// renderTicketTable formats the assigned-ticket list as an aligned table.
func renderTicketTable(tickets []models.Ticket) string {
	var b strings.Builder

	keyWidth := len("KEY")
	statusWidth := len("STATUS")
	priorityWidth := len("PRIORITY")
	assigneeWidth := len("ASSIGNEE")
	for _, t := range tickets {
		keyWidth = max(keyWidth, len(t.Key))
		statusWidth = max(statusWidth, len(t.Status))
		priorityWidth = max(priorityWidth, len(t.Priority))
		assigneeWidth = max(assigneeWidth, len(t.Assignee))
	}

	format := fmt.Sprintf("%%-%ds  %%-%ds  %%-%ds  %%-%ds  %%-%ds  %%s\n",
		keyWidth, statusWidth, priorityWidth, assigneeWidth, summaryWidth)

	b.WriteString(headerStyle.Render(strings.TrimRight(
		fmt.Sprintf(format, "KEY", "STATUS", "PRIORITY", "ASSIGNEE", "SUMMARY", "URL"), "\n")))
	b.WriteString("\n")

	for _, t := range tickets {
		row := fmt.Sprintf(format,
			keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, t.Key)),
			t.Status,
			t.Priority,
			t.Assignee,
			truncate(t.Summary, summaryWidth),
			dimStyle.Render(t.URL))
		b.WriteString(row)
	}

	return b.String()
}

// renderPullRequests formats a pull request list, one entry per line.
func renderPullRequests(pullRequests []models.PullRequest) string {
	var b strings.Builder
	for _, pr := range pullRequests {
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			keyStyle.Render(fmt.Sprintf("PR #%d:", pr.ID)),
			fmt.Sprintf("%s [%s]", truncate(pr.Title, summaryWidth), stateStyle.Render(pr.State)),
			dimStyle.Render(pr.URL)))
	}
	return b.String()
}
