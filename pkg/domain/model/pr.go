package model

// PRInfo holds pull request metadata extracted from the trigger event.
// All fields are set once at extraction and never mutated.
type PRInfo struct {
	Number  int    // Pull request number
	Title   string // Pull request title
	Author  string // Login of the pull request author
	BaseSHA string // Commit SHA of the base branch
	HeadSHA string // Commit SHA of the head branch
	URL     string // Canonical HTML URL of the pull request
}

// PRContext aggregates everything the description generator needs
type PRContext struct {
	PR            PRInfo
	CommitSummary string // One line per commit: "<sha7> <subject>"
	Diff          string // Unified diff with ignored files removed
}

// RunResult is the outcome of a single action run
type RunResult struct {
	Skipped     bool   // True when the run ended as a successful no-op
	Description string // Generated description, empty when skipped
}
