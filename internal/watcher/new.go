package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/MartinMcCurley/meet2notes/internal/logger"
)

// New creates a Watcher over inputDir. maxConcurrent bounds simultaneous
// pipeline runs; the default of 1 processes recordings one at a time.
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inputDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inputDir:  inputDir,
		handler:   handler,
		logger:    log,
		watcher:   fsWatcher,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
