package model_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *model.Config
		wantErr string
	}{
		{
			name: "Both credentials present",
			config: &model.Config{
				AnthropicAPIKey: "sk-ant-test",
				GitHubToken:     "ghs_test",
			},
			wantErr: "",
		},
		{
			name: "Missing API key",
			config: &model.Config{
				GitHubToken: "ghs_test",
			},
			wantErr: "anthropic API key is not set",
		},
		{
			name: "Missing GitHub token",
			config: &model.Config{
				AnthropicAPIKey: "sk-ant-test",
			},
			wantErr: "GitHub token is not set",
		},
		{
			name:    "Both missing reports the API key first",
			config:  &model.Config{},
			wantErr: "anthropic API key is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.wantErr)
			}
			if !goerr.HasTag(err, types.TagConfigMissing) {
				t.Error("Validate() error is not tagged as config_missing")
			}
		})
	}
}

func TestParseIgnorePatterns(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Single pattern",
			raw:      "dist/**",
			expected: []string{"dist/**"},
		},
		{
			name:     "Multiple patterns preserve order",
			raw:      "dist/**,*.lock,vendor/**",
			expected: []string{"dist/**", "*.lock", "vendor/**"},
		},
		{
			name:     "Entries are trimmed",
			raw:      " dist/** , *.lock ",
			expected: []string{"dist/**", "*.lock"},
		},
		{
			name:     "Empty entries are dropped",
			raw:      "dist/**,,  ,*.lock,",
			expected: []string{"dist/**", "*.lock"},
		},
		{
			name:     "Only separators",
			raw:      ", ,,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseIgnorePatterns(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseIgnorePatterns(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}
