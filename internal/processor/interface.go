package processor

import (
	"context"

	"github.com/MartinMcCurley/meet2notes/internal/transcript"
)

// Options controls one pipeline run.
type Options struct {
	// Base is the output filename prefix. Empty means the input file stem.
	Base string
	// Model is the whisper model size (tiny, base, small, medium, large).
	// Empty means the configured default.
	Model string
	// Timestamps prefixes each transcript line with [HH:MM:SS].
	Timestamps bool
	// SkipSummary stops the pipeline after the transcript is written.
	SkipSummary bool
	// ExportDocx additionally writes the notes as a .docx document.
	ExportDocx bool
}

// Processor runs the recording-to-notes pipeline and its individual stages.
type Processor interface {
	// Process runs extraction, transcription and notes generation end to
	// end for one recording.
	Process(ctx context.Context, inputPath string, opts Options) error
	// ExtractAudio pulls the first audio track of inputPath into a PCM WAV
	// file at audioPath.
	ExtractAudio(ctx context.Context, inputPath, audioPath string) error
	// Transcribe converts an audio file into ordered timed segments using
	// the given whisper model size.
	Transcribe(ctx context.Context, audioPath, model string) ([]transcript.Segment, error)
	// GenerateNotes summarizes a transcript file into a Markdown notes
	// document at outputPath.
	GenerateNotes(ctx context.Context, transcriptPath, outputPath string, exportDocx bool) error
}
