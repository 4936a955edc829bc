// Package cmd provides the command-line interface for the tether CLI tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tether",
	Short: "Tether links git branches and commits to JIRA tickets and Bitbucket pull requests",
	Long: `Tether links your git workflow to JIRA and Bitbucket Server. It extracts
ticket keys from branch names, prepends them to commit message drafts, lists
the tickets assigned to you, and resolves the pull requests that introduced
a given commit.

Configuration is read from environment variables on every invocation:
  JIRA_BASE_URL    ticket browse base, e.g. https://jira.example.com/browse/
  JIRA_TOKEN       JIRA personal access token
  BITBUCKET_TOKEN  Bitbucket Server personal access token`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	rootCmd.AddCommand(prsCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(openCmd)
}
