package transcript

import (
	"fmt"
	"os"
	"strings"
)

// Format renders segments as transcript lines, one per segment, in order.
// With timestamps enabled each line is prefixed by the segment start time.
func Format(segments []Segment, withTimestamps bool) []string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if withTimestamps {
			lines = append(lines, seg.Timestamp()+" "+text)
		} else {
			lines = append(lines, text)
		}
	}
	return lines
}

// Render joins transcript lines into the flat-file representation.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}

// WriteFile persists transcript lines as a UTF-8 text file, one line per
// segment.
func WriteFile(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(Render(lines)+"\n"), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// ReadLines loads a transcript file back into its line sequence.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}
