package executor

import "context"

// Executor defines the interface for executing external commands.
type Executor interface {
	// Execute runs a command and returns its captured stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteStream runs a command and delivers each combined output line
	// to onLine as it is produced. Used for long-running tools whose
	// progress output matters (ffmpeg, whisper).
	ExecuteStream(ctx context.Context, onLine func(line string), name string, args ...string) error
}
