package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tether-cli/tether/internal/config"
	"github.com/tether-cli/tether/internal/gitutil"
	"github.com/tether-cli/tether/internal/ticket"
)

var openBrowse bool

// openCmd turns the current branch name into a ticket URL.
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Print (or open) the JIRA ticket linked to the current branch",
	Long: `Extract the ticket key from the current branch name and print its browse
URL, including the pull-request development panel. With --browse, the URL is
opened in the system browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		branch, err := gitutil.CurrentBranch(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve current branch: %w", err)
		}

		key, ok := ticket.ExtractLoose(branch)
		if !ok {
			fmt.Println(infoStyle.Render(fmt.Sprintf("No JIRA ticket found in branch: %s", branch)))
			return nil
		}

		cfg := config.LoadConfig()
		if err := config.ValidateJiraConfig(cfg); err != nil {
			fmt.Println(infoStyle.Render(fmt.Sprintf("JIRA is not configured: %v", err)))
			return nil
		}

		ticketURL := fmt.Sprintf("%s%s%s", cfg.Jira.BaseURL, key, "?devStatusDetailDialog=pullrequest")
		fmt.Println(ticketURL)

		if openBrowse {
			if err := openInBrowser(ticketURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
		}

		return nil
	},
}

func openInBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

func init() {
	openCmd.Flags().BoolVar(&openBrowse, "browse", false, "Open the ticket URL in the system browser")
}
