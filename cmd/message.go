package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tether-cli/tether/internal/commitmsg"
	"github.com/tether-cli/tether/internal/gitutil"
	"github.com/tether-cli/tether/internal/logging"
)

var messageBranch string

// messageCmd rewrites a commit message draft file, prepending the ticket
// reference extracted from the current branch.
var messageCmd = &cobra.Command{
	Use:   "message <msg-file>",
	Short: "Prepend the branch's ticket reference to a commit message draft",
	Long: `Prepend the ticket reference from the current branch to a commit message
draft file. Intended as a prepare-commit-msg git hook:

  echo 'tether message "$1"' > .git/hooks/prepare-commit-msg

The file is only rewritten when the message actually changes. Long-lived
branches (main, master, develop, dev) never modify the draft.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		branch := messageBranch
		if branch == "" {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			branch, err = gitutil.CurrentBranch(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve current branch: %w", err)
			}
		}

		draft, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read commit message file: %w", err)
		}

		composed, changed := commitmsg.Compose(branch, string(draft))
		if !changed {
			logging.Debug("commit message unchanged", "branch", branch)
			return nil
		}

		if err := os.WriteFile(args[0], []byte(composed), 0o644); err != nil {
			return fmt.Errorf("failed to write commit message file: %w", err)
		}

		logging.Debug("commit message updated", "branch", branch)
		return nil
	},
}

func init() {
	messageCmd.Flags().StringVar(&messageBranch, "branch", "", "Branch name to use instead of the checked-out branch")
}
