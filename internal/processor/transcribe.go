package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MartinMcCurley/meet2notes/internal/transcript"
)

// modelFile maps a whisper model size name to its ggml weights file under
// the configured model directory.
func (p *implProcessor) modelFile(model string) string {
	return filepath.Join(p.cfg.Whisper.ModelDir, fmt.Sprintf("ggml-%s.bin", model))
}

// Transcribe runs whisper over an audio file and returns the ordered timed
// segments. The intermediate SRT artifact is removed afterwards.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath, model string) ([]transcript.Segment, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	p.logger.Info(ctx, "Transcribing %s with %s model...", audioPath, model)

	args := []string{
		"-m", p.modelFile(model),
		"-f", audioPath,
		"-osrt",
		"-l", p.cfg.Whisper.Language,
		"--output-file", outputPrefix,
	}

	onLine := func(line string) {
		p.logger.Debug(ctx, "whisper: %s", line)
	}

	start := time.Now()
	if err := p.executor.ExecuteStream(ctx, onLine, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	defer os.Remove(srtPath)

	segments, err := transcript.ParseSRT(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	elapsed := time.Since(start)
	var audioDuration float64
	if len(segments) > 0 {
		audioDuration = segments[len(segments)-1].End
	}
	p.logger.Info(ctx, "Transcription complete: %d segments in %s (%.2fx real-time)",
		len(segments), elapsed.Round(time.Second), audioDuration/elapsed.Seconds())

	return segments, nil
}
