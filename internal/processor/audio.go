package processor

import (
	"context"
	"fmt"
	"strconv"
)

// ExtractAudio extracts the first audio track to 16-bit PCM WAV, mono, at
// the configured sample rate. This is the format whisper expects.
func (p *implProcessor) ExtractAudio(ctx context.Context, inputPath, audioPath string) error {
	p.logger.Info(ctx, "Extracting audio: %s -> %s", inputPath, audioPath)

	args := []string{
		"-y", // overwrite
		"-i", inputPath,
		"-map", "0:a:0", // first audio track only
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		audioPath,
	}

	onLine := func(line string) {
		p.logger.Debug(ctx, "ffmpeg: %s", line)
	}

	if err := p.executor.ExecuteStream(ctx, onLine, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio saved to %s", audioPath)
	return nil
}
