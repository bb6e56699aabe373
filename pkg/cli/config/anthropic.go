package config

import "github.com/urfave/cli/v3"

// Anthropic holds Claude API configuration
type Anthropic struct {
	APIKey    string `masq:"secret"`
	Model     string
	MaxTokens int64
}

// Flags returns CLI flags for Claude API configuration. The INPUT_* sources
// carry explicit action inputs and take precedence over the plain
// environment fallbacks.
func (c *Anthropic) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key",
			Destination: &c.APIKey,
			Sources:     cli.EnvVars("INPUT_ANTHROPIC-API-KEY", "ANTHROPIC_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Claude model to use",
			Value:       "claude-3-5-haiku-latest",
			Destination: &c.Model,
			Sources:     cli.EnvVars("INPUT_MODEL", "PRDESC_MODEL"),
		},
		&cli.Int64Flag{
			Name:        "max-tokens",
			Usage:       "Maximum number of output tokens",
			Value:       1024,
			Destination: &c.MaxTokens,
			Sources:     cli.EnvVars("INPUT_MAX-TOKENS", "PRDESC_MAX_TOKENS"),
		},
	}
}
