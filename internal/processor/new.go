package processor

import (
	"github.com/MartinMcCurley/meet2notes/internal/config"
	"github.com/MartinMcCurley/meet2notes/internal/logger"
	"github.com/MartinMcCurley/meet2notes/internal/notes"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	executor  executor.Executor
	generator notes.Generator
	logger    logger.Logger
}

// New creates a Processor. generator may be nil when no credential is
// available; the notes stage then fails with a missing-credential error
// while earlier stages still run.
func New(cfg *config.Config, exec executor.Executor, gen notes.Generator, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		executor:  exec,
		generator: gen,
		logger:    log,
	}
}
