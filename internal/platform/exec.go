package platform

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// ProcessRunner runs an external program to completion.
type ProcessRunner interface {
	// Run returns the combined stdout+stderr of the process and its exit code.
	// A non-zero exit is not an error; err is set only when the process could
	// not be started or waited for, in which case exitCode is -1.
	Run(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)
}

// ExecRunner is the ProcessRunner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner for real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and waits for it to exit
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode(), nil
		}
		return string(out), -1, err
	}
	return string(out), 0, nil
}

// FormatCommandLine renders a command for logs, quoting arguments that
// contain whitespace or quotes
func FormatCommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"") {
		return strconv.Quote(arg)
	}
	return arg
}
