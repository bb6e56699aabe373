package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration
type GitHub struct {
	Token string `masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for API access",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_GITHUB-TOKEN", "GITHUB_TOKEN"),
		},
	}
}
