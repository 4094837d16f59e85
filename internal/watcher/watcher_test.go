package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MartinMcCurley/meet2notes/internal/logger"
)

func TestIsRecording(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting01.mkv", true},
		{"standup.MP4", true},
		{"call.wav", true},
		{"voicemail.m4a", true},
		{"notes.txt", false},
		{"slides.pdf", false},
		{".DS_Store", false},
	}

	w := &implWatcher{}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.isRecording(tt.path); got != tt.want {
				t.Errorf("isRecording(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherHandlesNewRecording(t *testing.T) {
	dir := t.TempDir()

	var (
		mu   sync.Mutex
		seen []string
	)
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
		return nil
	}

	w, err := New(dir, handler, logger.NewWithWriter("error", io.Discard), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Let the watch loop come up before creating the file.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "meeting01.mkv")
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler never invoked for new recording")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Start() returned %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if seen[0] != path {
		t.Errorf("handler got %q, want %q", seen[0], path)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.NewWithWriter("error", io.Discard), 1)
	if err == nil {
		t.Error("New() should fail for missing directory")
	}
}
