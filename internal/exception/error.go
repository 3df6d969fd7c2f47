package exception

import "errors"

// ErrSpawnFailure returned when the shell process could not be started at all
var ErrSpawnFailure = errors.New("failed to spawn command")

// ErrReportWrite returned when the scan report could not be encoded or written
var ErrReportWrite = errors.New("failed to write report")

// ErrInvalidConfig returned when scan settings fail validation
var ErrInvalidConfig = errors.New("invalid configuration")
