package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SubRip cue timing line as written by whisper.cpp:
// 00:00:00,000 --> 00:00:05,120
var reCueTiming = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})$`)

var reCueIndex = regexp.MustCompile(`^\d+$`)

// ParseSRT parses SubRip subtitle content into ordered segments.
// Cue indices are ignored; consecutive text lines within a cue are joined
// with a space.
func ParseSRT(content string) ([]Segment, error) {
	var segments []Segment
	inCue := false

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			inCue = false

		case strings.Contains(line, "-->"):
			m := reCueTiming.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("malformed cue timing: %q", line)
			}
			segments = append(segments, Segment{
				Start: cueSeconds(m[1], m[2], m[3], m[4]),
				End:   cueSeconds(m[5], m[6], m[7], m[8]),
			})
			inCue = true

		case !inCue && reCueIndex.MatchString(line):
			// cue sequence number

		default:
			if !inCue {
				return nil, fmt.Errorf("text outside cue: %q", line)
			}
			seg := &segments[len(segments)-1]
			if seg.Text == "" {
				seg.Text = line
			} else {
				seg.Text += " " + line
			}
		}
	}

	return segments, nil
}

func cueSeconds(hh, mm, ss, ms string) float64 {
	// Regex guarantees digits only.
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	s, _ := strconv.Atoi(ss)
	f, _ := strconv.Atoi(ms)
	return float64(h*3600+m*60+s) + float64(f)/1000
}
