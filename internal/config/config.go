// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// PlaceholderJiraBaseURL is the value shipped in documentation examples. A
// base URL still set to it is treated the same as unset.
const PlaceholderJiraBaseURL = "https://yourcompany.atlassian.net/browse/"

// Config holds a snapshot of all configuration parameters. Callers load a
// fresh snapshot per operation; nothing is cached between calls.
type Config struct {
	Jira      JiraConfig
	Bitbucket BitbucketConfig
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	// BaseURL is the ticket browse base, e.g. "https://jira.example.com/browse/".
	BaseURL string
	Token   string
}

// BitbucketConfig holds Bitbucket Server specific configuration.
type BitbucketConfig struct {
	Token string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("jira.base.url", "JIRA_BASE_URL")
	v.BindEnv("jira.token", "JIRA_TOKEN")
	v.BindEnv("bitbucket.token", "BITBUCKET_TOKEN")

	return &Config{
		Jira: JiraConfig{
			BaseURL: v.GetString("jira.base.url"),
			Token:   v.GetString("jira.token"),
		},
		Bitbucket: BitbucketConfig{
			Token: v.GetString("bitbucket.token"),
		},
	}
}

// ValidateJiraConfig reports whether the JIRA side of the configuration is
// usable, naming every missing environment variable.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.BaseURL == "" || config.Jira.BaseURL == PlaceholderJiraBaseURL {
		missingVars = append(missingVars, "JIRA_BASE_URL")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateBitbucketConfig reports whether the Bitbucket side of the
// configuration is usable.
func ValidateBitbucketConfig(config *Config) error {
	if config.Bitbucket.Token == "" {
		return fmt.Errorf("missing required environment variables: [BITBUCKET_TOKEN]")
	}

	return nil
}
