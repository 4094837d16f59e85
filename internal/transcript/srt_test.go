package transcript

import (
	"math"
	"testing"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:04,520
 Hello everyone, welcome.

2
00:00:05,000 --> 00:00:09,800
 Let's discuss
 the budget.

3
01:02:05,900 --> 01:02:10,000
 Moving on.
`

func TestParseSRT(t *testing.T) {
	segments, err := ParseSRT(sampleSRT)
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	if segments[0].Start != 0 || math.Abs(segments[0].End-4.52) > 1e-9 {
		t.Errorf("segment 0 timing = %v-%v, want 0-4.52", segments[0].Start, segments[0].End)
	}
	if segments[0].Text != "Hello everyone, welcome." {
		t.Errorf("segment 0 text = %q", segments[0].Text)
	}

	// Multi-line cue text joins with a space.
	if segments[1].Text != "Let's discuss the budget." {
		t.Errorf("segment 1 text = %q", segments[1].Text)
	}

	if math.Abs(segments[2].Start-3725.9) > 1e-9 {
		t.Errorf("segment 2 start = %v, want 3725.9", segments[2].Start)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	segments, err := ParseSRT("")
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("got %d segments, want 0", len(segments))
	}
}

func TestParseSRTMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad timing", "1\n00:00 --> 00:05\ntext\n"},
		{"text before any cue", "stray text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSRT(tt.content); err == nil {
				t.Error("ParseSRT() should fail")
			}
		})
	}
}

func TestParseSRTOrderPreserved(t *testing.T) {
	segments, err := ParseSRT(sampleSRT)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start < segments[i-1].Start {
			t.Errorf("segment %d start %v before previous %v", i, segments[i].Start, segments[i-1].Start)
		}
	}
}
