package transcript

import "fmt"

// Segment is one timed span of transcribed speech. Start and End are
// offsets in seconds from the beginning of the recording.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Timestamp renders the segment start as [HH:MM:SS]. Sub-second precision
// is truncated, not rounded: 3725.9s is [01:02:05].
func (s Segment) Timestamp() string {
	total := int(s.Start)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("[%02d:%02d:%02d]", hours, minutes, seconds)
}
