package command

import "fmt"

// ExecutionError represents a command that ran but exited with a nonzero status
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf(
		"command %q exited with status %d: %s",
		e.Command,
		e.ExitCode,
		e.Stderr,
	)
}
