package config

import (
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Action holds the GitHub Actions runtime configuration: the trigger event
// location and the optional run inputs.
type Action struct {
	EventName      string
	EventPath      string
	Repository     string
	APIBaseURL     string
	OutputPath     string
	IgnorePatterns string
}

// Flags returns CLI flags for the Actions runtime configuration
func (c *Action) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the triggering event",
			Destination: &c.EventName,
			Sources:     cli.EnvVars("GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path of the event payload file",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository in owner/repo form",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise Server",
			Destination: &c.APIBaseURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Path of the step output file",
			Destination: &c.OutputPath,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "ignore-patterns",
			Usage:       "Comma separated glob patterns of files to exclude from the diff",
			Destination: &c.IgnorePatterns,
			Sources:     cli.EnvVars("INPUT_IGNORE-PATTERNS"),
		},
	}
}

// Patterns returns the parsed ignore pattern list
func (c *Action) Patterns() []string {
	return model.ParseIgnorePatterns(c.IgnorePatterns)
}
