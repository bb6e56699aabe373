package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures so that callers can branch on the kind of
// failure without parsing messages.
var (
	// TagTriggerInvalid marks errors caused by an unacceptable trigger:
	// wrong event kind, or an event payload without a usable pull request.
	TagTriggerInvalid = goerr.NewTag("trigger_invalid")

	// TagConfigMissing marks errors caused by an absent required credential.
	TagConfigMissing = goerr.NewTag("config_missing")

	// TagAdapterFailure marks errors from GitHub API operations. The error
	// carries an "operation" value naming the failed operation.
	TagAdapterFailure = goerr.NewTag("adapter_failure")

	// TagGenerationFailure marks errors from the description generation:
	// model API failures and unusable response content.
	TagGenerationFailure = goerr.NewTag("generation_failure")
)
