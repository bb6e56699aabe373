package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// WriteOutput appends a step output to the file at path (GITHUB_OUTPUT) in
// the runner's heredoc format, which keeps multiline values intact:
//
//	name<<ghadelimiter_<uuid>
//	value
//	ghadelimiter_<uuid>
func WriteOutput(path, name, value string) error {
	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(value, delimiter) {
		return goerr.New("output value contains the generated delimiter",
			goerr.V("name", name),
		)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file",
			goerr.V("path", path),
		)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return goerr.Wrap(err, "failed to write output",
			goerr.V("path", path),
			goerr.V("name", name),
		)
	}

	return nil
}
