package cli

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse when the invocation asked for help text
// instead of selecting a sub-command. It is a success at the process
// boundary: help has already been printed and nothing is dispatched.
var ErrHelp = errors.New("help requested")

// ConfigError reports an invalid registry discovered while building the
// grammar: duplicate descriptor names or an empty registry. It aborts
// startup before any parsing happens.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "grammar configuration: " + e.Reason }

// UsageError reports an invocation the grammar rejected: a missing or
// unknown sub-command token, or malformed flags. Command names the grammar
// that rejected the input (the tool itself, or one sub-command), so the
// message points the user at the right usage text.
type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Err.Error())
}

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error from the dispatch sequence to a process exit code:
// 0 for success or a help request, 2 for usage errors, 1 for everything else
// (configuration errors and handler failures).
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}
