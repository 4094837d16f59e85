package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MartinMcCurley/meet2notes/internal/notes"
	"github.com/MartinMcCurley/meet2notes/internal/processor"
	"github.com/MartinMcCurley/meet2notes/internal/watcher"
	"github.com/MartinMcCurley/meet2notes/pkg/executor"
)

var (
	watchInput  string
	watchAPIKey string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and process new recordings",
	Long: `Monitors a directory and runs the full pipeline for every recording
dropped into it. Recordings are processed one at a time unless
performance.max_concurrent_files is raised in the config.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInput, "input", "", "directory to watch (default: paths.watch from config)")
	watchCmd.Flags().StringVar(&watchAPIKey, "api-key", "", "Gemini API key (alternative to "+apiKeyEnv+")")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	inputDir := watchInput
	if inputDir == "" {
		inputDir = cfg.Paths.Watch
	}
	if inputDir == "" {
		return fmt.Errorf("no watch directory: pass --input or set paths.watch in the config")
	}

	var gen notes.Generator
	if key := resolveAPIKey(watchAPIKey); key == "" {
		log.Warn(ctx, "%s not found in environment or command line", apiKeyEnv)
		log.Warn(ctx, "Recordings will be transcribed but notes generation will fail")
	} else {
		gen, err = newGenerator(ctx, cfg, key, "", log)
		if err != nil {
			return err
		}
	}

	p := processor.New(cfg, executor.New(), gen, log)
	handler := func(ctx context.Context, path string) error {
		opts := processor.Options{Timestamps: true, ExportDocx: cfg.Notes.ExportDocx}
		if cfg.Paths.Output != "" {
			stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			opts.Base = filepath.Join(cfg.Paths.Output, stem)
		}
		return p.Process(ctx, path, opts)
	}

	w, err := watcher.New(inputDir, handler, log, cfg.Performance.MaxConcurrentFiles)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}
