package notes

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinMcCurley/meet2notes/internal/logger"
)

type genCall struct {
	system string
	user   string
}

// fakeGen records every generation call and answers via respond.
type fakeGen struct {
	mu      sync.Mutex
	calls   []genCall
	respond func(call int, system, user string) (string, error)
}

func (f *fakeGen) generate(ctx context.Context, system, user string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, genCall{system: system, user: user})
	f.mu.Unlock()
	return f.respond(n, system, user)
}

func (f *fakeGen) recorded() []genCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]genCall(nil), f.calls...)
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
}

func testGenerator(gen textGenerator, maxChunkLen, workers int) Generator {
	return newWithTextGenerator(gen, Options{
		MaxChunkLen:   maxChunkLen,
		MaxConcurrent: workers,
		Now:           fixedNow,
	}, logger.NewWithWriter("error", io.Discard))
}

func TestGeneratePassthrough(t *testing.T) {
	fake := &fakeGen{respond: func(int, string, string) (string, error) {
		return "## Summary\nShort meeting.", nil
	}}
	g := testGenerator(fake, 1000, 1)

	lines := []string{"[00:00:00] Hello", "[00:00:05] Let's discuss the budget."}
	got, err := g.Generate(context.Background(), lines)
	require.NoError(t, err)

	// Single chunk: exactly one call, body passed through unmodified.
	calls := fake.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, systemPrompt, calls[0].system)
	assert.Equal(t, "[00:00:00] Hello\n[00:00:05] Let's discuss the budget.", calls[0].user)
	assert.Equal(t, "# Meeting Notes - 2026-08-30\n\n## Summary\nShort meeting.", got)
}

func TestGenerateMultiChunkReduction(t *testing.T) {
	fake := &fakeGen{respond: func(call int, system, user string) (string, error) {
		if strings.Contains(system, synthesisDirective) {
			return "FINAL", nil
		}
		if strings.Contains(user, "aaaa") {
			return "A", nil
		}
		return "B", nil
	}}
	g := testGenerator(fake, 10, 1)

	got, err := g.Generate(context.Background(), []string{"aaaa", "bbbb", "cccc"})
	require.NoError(t, err)
	assert.Equal(t, "# Meeting Notes - 2026-08-30\n\nFINAL", got)

	calls := fake.recorded()
	require.Len(t, calls, 3)

	// Exactly one synthesis call, partials joined in chunk order with the
	// visible separator.
	synth := calls[2]
	assert.Equal(t, systemPrompt+"\n"+synthesisDirective, synth.system)
	assert.Equal(t, "A\n\n---\n\nB", synth.user)
}

func TestGenerateOrderPreservedUnderConcurrency(t *testing.T) {
	// Later chunks answer faster than earlier ones; the synthesis input
	// must still follow chunk order.
	fake := &fakeGen{respond: func(call int, system, user string) (string, error) {
		if strings.Contains(system, synthesisDirective) {
			return "FINAL", nil
		}
		switch {
		case strings.Contains(user, "aaaa"):
			time.Sleep(30 * time.Millisecond)
			return "A", nil
		case strings.Contains(user, "bbbb"):
			time.Sleep(10 * time.Millisecond)
			return "B", nil
		default:
			return "C", nil
		}
	}}
	g := testGenerator(fake, 35, 3)

	_, err := g.Generate(context.Background(), []string{
		strings.Repeat("a", 30),
		strings.Repeat("b", 30),
		strings.Repeat("c", 30),
	})
	require.NoError(t, err)

	calls := fake.recorded()
	require.Len(t, calls, 4)
	assert.Equal(t, "A\n\n---\n\nB\n\n---\n\nC", calls[3].user)
}

func TestGenerateFailurePropagation(t *testing.T) {
	boom := errors.New("quota exceeded")
	fake := &fakeGen{respond: func(call int, system, user string) (string, error) {
		if strings.Contains(user, "bbbb") {
			return "", boom
		}
		return "ok", nil
	}}
	g := testGenerator(fake, 4, 1)

	_, err := g.Generate(context.Background(), []string{"aaaa", "bbbb", "cccc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chunk 2/3")

	// No synthesis call after a chunk failure.
	for _, call := range fake.recorded() {
		assert.NotContains(t, call.system, synthesisDirective)
	}
}

func TestGenerateRecursiveReduction(t *testing.T) {
	// Partial summaries too long to synthesize directly force another
	// chunk/summarize/reduce level; every call input stays bounded.
	const maxLen = 10
	fake := &fakeGen{respond: func(call int, system, user string) (string, error) {
		if call < 2 {
			return strings.Repeat(string(rune('A'+call)), 8), nil
		}
		if call < 5 {
			return string(rune('a' + call - 2)), nil
		}
		return "final", nil
	}}
	g := testGenerator(fake, maxLen, 1)

	got, err := g.Generate(context.Background(), []string{"aaaaaaaa", "bbbbbbbb"})
	require.NoError(t, err)
	assert.Equal(t, "# Meeting Notes - 2026-08-30\n\nfinal", got)

	calls := fake.recorded()
	require.Len(t, calls, 6)
	for i, call := range calls {
		// Chunk budget counts line characters; joining adds the newlines back.
		budget := maxLen + strings.Count(call.user, "\n")
		assert.LessOrEqual(t, len(call.user), budget, "call %d input was not re-bounded", i)
	}
}

func TestGenerateEmptyTranscript(t *testing.T) {
	g := testGenerator(&fakeGen{respond: func(int, string, string) (string, error) {
		t.Fatal("no call expected for empty transcript")
		return "", nil
	}}, 1000, 1)

	_, err := g.Generate(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := testGenerator(&fakeGen{respond: func(int, string, string) (string, error) {
		return "ok", nil
	}}, 1000, 1)

	_, err := g.Generate(ctx, []string{"line"})
	assert.Error(t, err)
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Options{}, logger.NewWithWriter("error", io.Discard))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
