package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MartinMcCurley/meet2notes/internal/processor"
	"github.com/MartinMcCurley/meet2notes/internal/transcript"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

var (
	transcribeModel        string
	transcribeAudio        string
	transcribeOutput       string
	transcribeNoTimestamps bool
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe an existing audio file",
	Long: `Transcribes a WAV audio file with whisper and writes a plain-text
transcript, one timestamped line per speech segment.`,
	Args: cobra.NoArgs,
	RunE: runTranscribe,
}

func init() {
	transcribeCmd.Flags().StringVar(&transcribeModel, "model", "", "whisper model size (tiny, base, small, medium, large)")
	transcribeCmd.Flags().StringVar(&transcribeAudio, "transcript", "meeting01_audio.wav", "path to the audio file to transcribe")
	transcribeCmd.Flags().StringVar(&transcribeOutput, "output", "", "path for the output transcript file (default: based on input filename)")
	transcribeCmd.Flags().BoolVar(&transcribeNoTimestamps, "no-timestamps", false, "do not include timestamps in the transcript")
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	model := transcribeModel
	if model == "" {
		model = cfg.Whisper.Model
	}

	p := processor.New(cfg, executor.New(), nil, log)
	segments, err := p.Transcribe(ctx, transcribeAudio, model)
	if err != nil {
		return err
	}

	outputPath := transcribeOutput
	if outputPath == "" {
		stem := strings.TrimSuffix(filepath.Base(transcribeAudio), filepath.Ext(transcribeAudio))
		outputPath = fmt.Sprintf("%s_transcript_%s.txt", stem, model)
	}

	lines := transcript.Format(segments, !transcribeNoTimestamps)
	if err := transcript.WriteFile(outputPath, lines); err != nil {
		return err
	}

	log.Info(ctx, "Transcript saved to %s", outputPath)
	return nil
}
