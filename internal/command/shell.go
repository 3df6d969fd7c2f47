package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/robgonnella/vlanscan/internal/exception"
)

// DefaultShell the shell used to interpret command strings
const DefaultShell = "sh"

// ShellOption sets optional fields on ShellExecutor
type ShellOption func(e *ShellExecutor)

// WithShell overrides the shell binary used to run commands
func WithShell(shell string) ShellOption {
	return func(e *ShellExecutor) {
		e.shell = shell
	}
}

// ShellExecutor is an implementation of the Executor interface that
// passes each command string to "sh -c"
type ShellExecutor struct {
	shell string
}

// NewShellExecutor returns a new instance of ShellExecutor
func NewShellExecutor(options ...ShellOption) *ShellExecutor {
	e := &ShellExecutor{shell: DefaultShell}

	for _, o := range options {
		o(e)
	}

	return e
}

// Run executes command synchronously. A nonzero exit status is returned as
// *ExecutionError carrying stderr, while a failure to start the shell at all
// wraps exception.ErrSpawnFailure.
func (e *ShellExecutor) Run(ctx context.Context, command string) (string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	if err == nil {
		return decode(stdout.Bytes()), nil
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		return "", &ExecutionError{
			Command:  command,
			ExitCode: exitErr.ExitCode(),
			Stderr:   decode(stderr.Bytes()),
		}
	}

	return "", fmt.Errorf("%w: %s: %s", exception.ErrSpawnFailure, e.shell, err)
}

// invalid byte sequences are replaced rather than rejected
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
