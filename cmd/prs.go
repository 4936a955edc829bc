package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tether-cli/tether/internal/bitbucket"
	"github.com/tether-cli/tether/internal/config"
	"github.com/tether-cli/tether/internal/gitutil"
	"github.com/tether-cli/tether/internal/logging"
	"github.com/tether-cli/tether/internal/resolve"
)

var (
	prsFile string
	prsLine int
)

// prsCmd resolves the pull requests that introduced a commit.
var prsCmd = &cobra.Command{
	Use:   "prs [commit...]",
	Short: "Show the pull requests that introduced a commit",
	Long: `Show the Bitbucket Server pull requests containing a commit.

The commit is resolved from, in order of precedence:
  1. --file and --line: the revision blamed for that line
  2. positional commit arguments (the first one is used)
  3. HEAD

When the server reports no pull requests, the commit message is inspected
for an inline reference like "Merged pull request #42"; failing that, the
commit's browse URL is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		// CLI lines are 1-based; the annotation is keyed zero-based.
		lineContext := -1
		if prsLine > 0 {
			if prsFile == "" {
				return fmt.Errorf("--line requires --file")
			}
			lineContext = prsLine - 1
		}

		var annotation resolve.Annotation
		if lineContext >= 0 {
			blame, err := gitutil.NewBlameAnnotation(dir, prsFile)
			if err != nil {
				return fmt.Errorf("failed to annotate %s: %w", prsFile, err)
			}
			annotation = blame
		}

		selection := args
		if len(selection) == 0 && lineContext < 0 {
			head, err := gitutil.HeadCommit(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve HEAD: %w", err)
			}
			selection = []string{head}
		}

		commitHash, ok := resolve.Commit(lineContext, selection, annotation)
		if !ok {
			fmt.Println(infoStyle.Render("No commit could be resolved for this context."))
			return nil
		}

		remotes, err := gitutil.Remotes(dir)
		if err != nil {
			return fmt.Errorf("failed to list git remotes: %w", err)
		}

		endpoint, ok := bitbucket.ResolveEndpointFromRemotes(remotes)
		if !ok {
			fmt.Println(infoStyle.Render("No Bitbucket Server remote found for this repository."))
			return nil
		}

		cfg := config.LoadConfig()
		if err := config.ValidateBitbucketConfig(cfg); err != nil {
			fmt.Println(infoStyle.Render(fmt.Sprintf("Bitbucket is not configured: %v", err)))
			return nil
		}

		logging.Debug("fetching pull requests",
			"server", endpoint.Server,
			"commit", commitHash,
			"token", logging.MaskSensitive(cfg.Bitbucket.Token))

		service := bitbucket.NewService()
		pullRequests := <-service.PullRequestsForCommitAsync(cmd.Context(), cfg, endpoint, commitHash)

		if len(pullRequests) > 0 {
			fmt.Print(renderPullRequests(pullRequests))
			return nil
		}

		// Secondary path: an inline reference embedded in the commit message.
		if message, err := gitutil.CommitMessage(dir, commitHash); err == nil {
			if number, found := bitbucket.ExtractMessageReference(message); found {
				fmt.Println(keyStyle.Render(fmt.Sprintf("PR #%d", number)))
				fmt.Println(dimStyle.Render(bitbucket.PullRequestURL(endpoint, number)))
				return nil
			}
		}

		fmt.Println(infoStyle.Render("No pull requests found for this commit."))
		fmt.Println(dimStyle.Render(bitbucket.CommitBrowseURL(endpoint, commitHash)))
		return nil
	},
}

func init() {
	prsCmd.Flags().StringVar(&prsFile, "file", "", "File to annotate for line-level commit resolution")
	prsCmd.Flags().IntVar(&prsLine, "line", 0, "1-based line number in --file whose commit should be resolved")
}
