package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tether-cli/tether/internal/config"
	"github.com/tether-cli/tether/internal/jira"
	"github.com/tether-cli/tether/internal/logging"
)

// ticketsCmd lists the JIRA tickets assigned to the current user.
var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List your assigned JIRA tickets",
	Long: `List the JIRA tickets assigned to the current user that are not yet done,
ordered by priority. Requires JIRA_BASE_URL and JIRA_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if err := config.ValidateJiraConfig(cfg); err != nil {
			fmt.Println(infoStyle.Render(fmt.Sprintf("JIRA is not configured: %v", err)))
			return nil
		}

		logging.Debug("fetching assigned tickets",
			"base_url", cfg.Jira.BaseURL,
			"token", logging.MaskSensitive(cfg.Jira.Token))

		service := jira.NewSearchService()
		tickets := <-service.SearchAssignedAsync(cmd.Context(), cfg)

		if len(tickets) == 0 {
			fmt.Println(infoStyle.Render("No assigned tickets found."))
			return nil
		}

		fmt.Print(renderTicketTable(tickets))
		return nil
	},
}
