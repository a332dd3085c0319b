package entities

import (
	"fmt"
	"strings"
)

// SpawnExitCode marks a command that failed before producing an exit status
// (binary missing, permission denied, context cancelled).
const SpawnExitCode = -1

// CommandError describes a failed external command invocation. Args holds the
// full argument vector including the binary name, ExitCode the process exit
// status or SpawnExitCode, and Stderr whatever the command wrote there.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (it *CommandError) Error() string {
	msg := fmt.Sprintf("%s: exit code %d", strings.Join(it.Args, " "), it.ExitCode)
	if stderr := strings.TrimSpace(it.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
