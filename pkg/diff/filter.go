// Package diff filters noise files out of unified diff text before it is
// handed to the description generator.
package diff

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/ctxlog"
)

// headerPrefix starts the per-file section header of a unified diff
const headerPrefix = "diff --git a/"

// pathMarker separates the old path from the new path in a section header
const pathMarker = " b/"

// Filter removes whole per-file sections from diff whose file path matches
// any of the given glob patterns (`*` matches within a path segment, `**`
// across segments). With no patterns the input is returned unchanged.
// Sections with an unparsable header are dropped with a warning. Text that
// precedes the first section header is kept as is.
func Filter(ctx context.Context, diff string, patterns []string) string {
	if len(patterns) == 0 {
		return diff
	}

	logger := ctxlog.From(ctx)

	var kept []string
	removed := 0

	for _, section := range splitSections(diff) {
		if strings.TrimSpace(section) == "" {
			continue
		}

		header := section
		if i := strings.Index(section, "\n"); i >= 0 {
			header = section[:i]
		}

		// Free text without a section header is not subject to filtering
		if !strings.HasPrefix(header, headerPrefix) {
			kept = append(kept, section)
			continue
		}

		// Header format: diff --git a/<path> b/<path>
		rest := header[len(headerPrefix):]
		marker := strings.Index(rest, pathMarker)
		if marker <= 0 {
			logger.Warn("Dropping diff section with unparsable header",
				slog.String("header", header),
			)
			continue
		}

		path := rest[:marker]
		if matchesAny(logger, path, patterns) {
			logger.Info("Removing ignored file from diff",
				slog.String("file", path),
			)
			removed++
			continue
		}

		kept = append(kept, section)
	}

	if removed > 0 {
		logger.Info("Removed ignored files from diff",
			slog.Int("count", removed),
		)
	}

	return strings.Join(kept, "")
}

// splitSections splits diff at every line starting with the section header
// prefix. Each section keeps its own header line; text before the first
// header becomes its own leading section.
func splitSections(diff string) []string {
	var bounds []int
	for off := 0; ; {
		i := strings.Index(diff[off:], headerPrefix)
		if i < 0 {
			break
		}
		pos := off + i
		if pos == 0 || diff[pos-1] == '\n' {
			bounds = append(bounds, pos)
		}
		off = pos + len(headerPrefix)
	}

	if len(bounds) == 0 {
		return []string{diff}
	}

	var sections []string
	if bounds[0] > 0 {
		sections = append(sections, diff[:bounds[0]])
	}
	for i, b := range bounds {
		end := len(diff)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		sections = append(sections, diff[b:end])
	}

	return sections
}

func matchesAny(logger *slog.Logger, path string, patterns []string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Warn("Invalid ignore pattern",
				slog.String("pattern", pattern),
				slog.Any("error", err),
			)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
