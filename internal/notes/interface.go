package notes

import "context"

// Generator turns an ordered transcript into a dated Markdown notes
// document (Summary, Key Points, Action Items).
type Generator interface {
	Generate(ctx context.Context, lines []string) (string, error)
}
