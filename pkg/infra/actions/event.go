// Package actions implements the GitHub Actions runner contract: reading the
// trigger event the runner delivers and writing step outputs.
package actions

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
)

// LoadTriggerEvent builds a TriggerEvent from the values the runner provides:
// the event name (GITHUB_EVENT_NAME), the path of the event payload file
// (GITHUB_EVENT_PATH) and the owner/repo pair (GITHUB_REPOSITORY).
func LoadTriggerEvent(eventName, eventPath, repository string) (*model.TriggerEvent, error) {
	if eventPath == "" {
		return nil, goerr.New("event payload path is not set (GITHUB_EVENT_PATH)")
	}

	payload, err := os.ReadFile(eventPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload",
			goerr.V("path", eventPath),
		)
	}

	// Only the action field is needed here; the full payload is parsed later
	var probe struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, goerr.Wrap(err, "failed to parse event payload",
			goerr.V("path", eventPath),
		)
	}

	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, goerr.New("invalid repository name, expected owner/repo",
			goerr.V("repository", repository),
		)
	}

	return &model.TriggerEvent{
		Name:    eventName,
		Action:  probe.Action,
		Owner:   owner,
		Repo:    repo,
		Payload: payload,
	}, nil
}
