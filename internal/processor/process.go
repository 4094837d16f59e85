package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MartinMcCurley/meet2notes/internal/notes"
	"github.com/MartinMcCurley/meet2notes/internal/transcript"
)

// Process runs the full pipeline for one recording: audio extraction,
// transcription, summarization, persistence. Output files follow the
// {base}_audio.wav / {base}_transcript_{model}.txt / {base}_notes.md
// naming scheme.
func (p *implProcessor) Process(ctx context.Context, inputPath string, opts Options) error {
	start := time.Now()

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	base := opts.Base
	if base == "" {
		name := filepath.Base(inputPath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	model := opts.Model
	if model == "" {
		model = p.cfg.Whisper.Model
	}

	p.logger.Info(ctx, "Processing recording: %s", inputPath)

	audioPath := base + "_audio.wav"
	if strings.EqualFold(filepath.Ext(inputPath), ".wav") {
		p.logger.Info(ctx, "Input is already a WAV file, skipping extraction")
		audioPath = inputPath
	} else {
		if err := p.ExtractAudio(ctx, inputPath, audioPath); err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
	}

	segments, err := p.Transcribe(ctx, audioPath, model)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	lines := transcript.Format(segments, opts.Timestamps)
	transcriptPath := fmt.Sprintf("%s_transcript_%s.txt", base, model)
	if err := transcript.WriteFile(transcriptPath, lines); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript saved to %s", transcriptPath)

	if opts.SkipSummary {
		p.logger.Info(ctx, "Summary generation skipped")
		p.logger.Info(ctx, "Done in %s", time.Since(start).Round(time.Second))
		return nil
	}

	notesPath := base + "_notes.md"
	if err := p.GenerateNotes(ctx, transcriptPath, notesPath, opts.ExportDocx); err != nil {
		return fmt.Errorf("generate notes: %w", err)
	}

	p.logger.Info(ctx, "Done in %s", time.Since(start).Round(time.Second))
	return nil
}

// GenerateNotes summarizes a transcript file into Markdown meeting notes.
// The notes file is only written after the whole reduction succeeds.
func (p *implProcessor) GenerateNotes(ctx context.Context, transcriptPath, outputPath string, exportDocx bool) error {
	if p.generator == nil {
		return notes.ErrMissingAPIKey
	}

	lines, err := transcript.ReadLines(transcriptPath)
	if err != nil {
		return err
	}

	doc, err := p.generator.Generate(ctx, lines)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	p.logger.Info(ctx, "Meeting notes saved to %s", outputPath)

	if exportDocx {
		docxPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		if err := notes.WriteDocx(doc, docxPath); err != nil {
			return fmt.Errorf("write docx notes: %w", err)
		}
		p.logger.Info(ctx, "Meeting notes saved to %s", docxPath)
	}

	return nil
}
