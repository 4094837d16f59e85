package notes

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// partialSeparator joins partial summaries before the reduction call. The
// horizontal rule keeps chunk boundaries visible to the model.
const partialSeparator = "\n\n---\n\n"

// Generate produces the final notes document: a dated header followed by
// the reduced summary of all transcript chunks.
func (g *implGenerator) Generate(ctx context.Context, lines []string) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("transcript is empty")
	}

	body, err := g.mapReduce(ctx, lines)
	if err != nil {
		return "", err
	}

	header := fmt.Sprintf("# Meeting Notes - %s\n\n", g.now().Format("2006-01-02"))
	return header + body, nil
}

// mapReduce runs one chunk/summarize/reduce pass over the lines. A single
// chunk's summary passes through unmodified. When the joined partials of a
// multi-chunk pass still exceed the chunk budget, the same pass is applied
// to the joined text again, so every generation call input stays bounded.
func (g *implGenerator) mapReduce(ctx context.Context, lines []string) (string, error) {
	chunks := chunkLines(lines, g.maxChunkLen)
	g.logger.Info(ctx, "Processing transcript in %d chunks...", len(chunks))

	partials, err := g.summarizeChunks(ctx, chunks)
	if err != nil {
		return "", err
	}

	if len(partials) == 1 {
		return partials[0], nil
	}

	joined := strings.Join(partials, partialSeparator)
	if len(joined) > g.maxChunkLen {
		g.logger.Info(ctx, "Joined summaries exceed chunk budget, reducing another level...")
		return g.mapReduce(ctx, strings.Split(joined, "\n"))
	}

	g.logger.Info(ctx, "Generating final summary from all chunks...")
	final, err := g.gen.generate(ctx, systemPrompt+"\n"+synthesisDirective, joined)
	if err != nil {
		return "", fmt.Errorf("synthesize notes: %w", err)
	}

	return final, nil
}

// summarizeChunks issues one generation call per chunk through a bounded
// worker pool. Partials land in slots keyed by chunk index, so output order
// always matches chunk order regardless of completion order. The first
// failure cancels outstanding work and aborts the whole run.
func (g *implGenerator) summarizeChunks(ctx context.Context, chunks [][]string) ([]string, error) {
	partials := make([]string, len(chunks))
	sem := newSemaphore(g.workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, chunk := range chunks {
		if err := sem.acquire(ctx); err != nil {
			break
		}

		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			defer sem.release()

			summary, err := g.gen.generate(ctx, systemPrompt, text)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
					cancel()
				}
				mu.Unlock()
				return
			}

			partials[i] = summary
			g.logger.Info(ctx, "Processed chunk %d/%d", i+1, len(chunks))
		}(i, strings.Join(chunk, "\n"))
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return partials, nil
}
