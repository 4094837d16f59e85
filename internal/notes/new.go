package notes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MartinMcCurley/meet2notes/internal/logger"
)

// ErrMissingAPIKey is returned before any service call when no credential
// was supplied.
var ErrMissingAPIKey = errors.New("gemini API key not set")

// Options configures a Generator. The credential is carried explicitly;
// nothing in this package reads the environment.
type Options struct {
	APIKey      string
	Model       string
	MaxChunkLen int
	// MaxConcurrent bounds in-flight generation calls during per-chunk
	// summarization. 1 means strictly sequential.
	MaxConcurrent int
	// Now supplies the date for the notes header. Defaults to time.Now.
	Now func() time.Time
}

type implGenerator struct {
	gen         textGenerator
	maxChunkLen int
	workers     int
	now         func() time.Time
	logger      logger.Logger
}

// New creates a Generator backed by the Gemini API. The client is
// constructed once and reused for every call.
func New(ctx context.Context, opts Options, log logger.Logger) (Generator, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := newGeminiClient(ctx, opts.APIKey, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return newWithTextGenerator(client, opts, log), nil
}

func newWithTextGenerator(gen textGenerator, opts Options, log logger.Logger) Generator {
	if opts.MaxChunkLen <= 0 {
		opts.MaxChunkLen = 12000
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &implGenerator{
		gen:         gen,
		maxChunkLen: opts.MaxChunkLen,
		workers:     opts.MaxConcurrent,
		now:         opts.Now,
		logger:      log,
	}
}
