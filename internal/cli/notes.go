package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MartinMcCurley/meet2notes/internal/processor"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

var (
	notesTranscript string
	notesOutput     string
	notesModel      string
	notesAPIKey     string
	notesDocx       bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Generate meeting notes from a transcript",
	Long: `Summarizes a transcript file into Markdown meeting notes with Summary,
Key Points and Action Items sections. Long transcripts are summarized in
chunks and synthesized into one document.`,
	Args: cobra.NoArgs,
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().StringVar(&notesTranscript, "transcript", "meeting01_transcript_tiny.txt", "path to the transcript file")
	notesCmd.Flags().StringVar(&notesOutput, "output", "meeting_notes.md", "path for the output Markdown file")
	notesCmd.Flags().StringVar(&notesModel, "model", "", "Gemini model to use for summarization")
	notesCmd.Flags().StringVar(&notesAPIKey, "api-key", "", "Gemini API key (alternative to "+apiKeyEnv+")")
	notesCmd.Flags().BoolVar(&notesDocx, "docx", false, "also export notes as a .docx document")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	// Validated before any service call is attempted.
	key := resolveAPIKey(notesAPIKey)
	if key == "" {
		return fmt.Errorf("%s not set and --api-key not provided; export the variable or pass the flag", apiKeyEnv)
	}

	gen, err := newGenerator(ctx, cfg, key, notesModel, log)
	if err != nil {
		return err
	}

	p := processor.New(cfg, executor.New(), gen, log)
	return p.GenerateNotes(ctx, notesTranscript, notesOutput, notesDocx || cfg.Notes.ExportDocx)
}
