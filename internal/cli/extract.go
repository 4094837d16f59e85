package cli

import (
	"github.com/spf13/cobra"

	"github.com/MartinMcCurley/meet2notes/internal/processor"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

var (
	extractBase         string
	extractModel        string
	extractNoTimestamps bool
)

var extractCmd = &cobra.Command{
	Use:   "extract INPUT",
	Short: "Extract audio and transcribe a recording",
	Long: `Extracts the first audio track of a video or audio file to 16 kHz PCM WAV
and transcribes it with whisper. No summarization is performed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractBase, "output", "o", "", "base name for output files (default: input file stem)")
	extractCmd.Flags().StringVarP(&extractModel, "model", "m", "", "whisper model size (tiny, base, small, medium, large)")
	extractCmd.Flags().BoolVar(&extractNoTimestamps, "no-timestamps", false, "do not include timestamps in the transcript")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	p := processor.New(cfg, executor.New(), nil, log)
	return p.Process(cmd.Context(), args[0], processor.Options{
		Base:        extractBase,
		Model:       extractModel,
		Timestamps:  !extractNoTimestamps,
		SkipSummary: true,
	})
}
