package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinMcCurley/meet2notes/internal/config"
	"github.com/MartinMcCurley/meet2notes/internal/logger"
	"github.com/MartinMcCurley/meet2notes/internal/notes"
	"github.com/MartinMcCurley/meet2notes/internal/processor"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

// apiKeyEnv is the environment variable consulted when --api-key is absent.
const apiKeyEnv = "GEMINI_API_KEY"

var (
	cfgFile string

	rootModel     string
	rootOutput    string
	rootAPIKey    string
	rootNoSummary bool
	rootDocx      bool
)

var rootCmd = &cobra.Command{
	Use:   "meet2notes VIDEO",
	Short: "Convert meeting recordings into transcripts and Markdown notes",
	Long: `meet2notes converts a meeting recording into meeting notes in three steps:
audio extraction (ffmpeg), transcription (whisper) and summarization (Gemini).

Running without a subcommand executes the whole pipeline for one recording.
Each stage is also available on its own: see 'extract', 'transcribe' and
'notes'.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPipeline,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&rootModel, "model", "", "whisper model size (tiny, base, small, medium, large)")
	rootCmd.Flags().StringVar(&rootOutput, "output", "", "base name for output files (default: input file stem)")
	rootCmd.Flags().StringVar(&rootAPIKey, "api-key", "", "Gemini API key (alternative to "+apiKeyEnv+")")
	rootCmd.Flags().BoolVar(&rootNoSummary, "no-summary", false, "skip the notes generation step")
	rootCmd.Flags().BoolVar(&rootDocx, "docx", false, "also export notes as a .docx document")
}

// Execute runs the CLI. The context carries interrupt cancellation from
// main.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

// resolveAPIKey prefers the explicit flag over the environment. This is the
// only place the credential is looked up; components receive it explicitly.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(apiKeyEnv)
}

func newGenerator(ctx context.Context, cfg *config.Config, apiKey, model string, log logger.Logger) (notes.Generator, error) {
	if model == "" {
		model = cfg.Gemini.Model
	}
	return notes.New(ctx, notes.Options{
		APIKey:        apiKey,
		Model:         model,
		MaxChunkLen:   cfg.Notes.MaxChunkLen,
		MaxConcurrent: cfg.Performance.MaxConcurrentCalls,
	}, log)
}

// runPipeline is the orchestrator: the full pipeline for one recording.
// A missing credential is only a warning here; the notes stage fails later
// if it is truly absent.
func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	var gen notes.Generator
	if !rootNoSummary {
		if key := resolveAPIKey(rootAPIKey); key == "" {
			log.Warn(ctx, "%s not found in environment or command line", apiKeyEnv)
			log.Warn(ctx, "Summary generation will fail unless the credential is set elsewhere")
		} else {
			gen, err = newGenerator(ctx, cfg, key, "", log)
			if err != nil {
				return err
			}
		}
	}

	p := processor.New(cfg, executor.New(), gen, log)
	return p.Process(ctx, args[0], processor.Options{
		Base:        rootOutput,
		Model:       rootModel,
		Timestamps:  true,
		SkipSummary: rootNoSummary,
		ExportDocx:  rootDocx || cfg.Notes.ExportDocx,
	})
}
