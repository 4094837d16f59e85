package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MartinMcCurley/meet2notes/internal/logger"
)

// recordingExtensions lists the media formats accepted from the inbox.
var recordingExtensions = []string{
	".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv",
	".wav", ".mp3", ".m4a", ".ogg",
}

type implWatcher struct {
	inputDir  string
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start monitors the inbox until the context ends, running the pipeline
// for every recording dropped into it.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for recordings in %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight processing to finish...")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isRecording(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-recording file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			// Give the writer a moment to finish the file.
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) isRecording(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range recordingExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
