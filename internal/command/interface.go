package command

import "context"

//go:generate mockgen -destination=../mock/command/mock_command.go -package=mock_command . Executor

// Executor runs a single host command and returns its standard output
type Executor interface {
	Run(ctx context.Context, command string) (string, error)
}
