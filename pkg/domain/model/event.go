package model

// EventPullRequest is the only trigger event name this action accepts
const EventPullRequest = "pull_request"

// TriggerEvent represents the CI event that started this run
type TriggerEvent struct {
	Name    string // Event name from GITHUB_EVENT_NAME (e.g. pull_request)
	Action  string // Event action from the payload (e.g. opened)
	Owner   string // Repository owner from GITHUB_REPOSITORY
	Repo    string // Repository name from GITHUB_REPOSITORY
	Payload []byte // Raw JSON event payload
}

// IsPullRequest checks if the event is a pull_request event
func (e *TriggerEvent) IsPullRequest() bool {
	return e.Name == EventPullRequest
}

// IsActionAllowed checks if the event action should trigger description
// generation
func (e *TriggerEvent) IsActionAllowed() bool {
	switch e.Action {
	case "opened", "synchronize", "reopened":
		return true
	default:
		return false
	}
}

// ActionLabel returns the event action for logging, or "unknown" when the
// payload carries no action
func (e *TriggerEvent) ActionLabel() string {
	if e.Action == "" {
		return "unknown"
	}
	return e.Action
}

// Decision indicates whether a run proceeds or ends as a successful no-op
type Decision int

const (
	DecisionProceed Decision = iota
	DecisionSkipRun
)
