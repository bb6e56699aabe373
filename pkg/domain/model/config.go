package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// Config holds the resolved run configuration. Credential fields carry masq
// tags so they are redacted when the config is logged.
type Config struct {
	AnthropicAPIKey string `masq:"secret"`
	GitHubToken     string `masq:"secret"`
	Model           string
	MaxTokens       int64
	IgnorePatterns  []string
}

// Validate checks that both required credentials are present
func (c *Config) Validate() error {
	if c.AnthropicAPIKey == "" {
		return goerr.New("anthropic API key is not set (anthropic-api-key input or ANTHROPIC_API_KEY)",
			goerr.T(types.TagConfigMissing))
	}
	if c.GitHubToken == "" {
		return goerr.New("GitHub token is not set (github-token input or GITHUB_TOKEN)",
			goerr.T(types.TagConfigMissing))
	}
	return nil
}

// ParseIgnorePatterns splits a comma separated pattern list, trimming each
// entry and dropping empty ones while preserving order
func ParseIgnorePatterns(raw string) []string {
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
