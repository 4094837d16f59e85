package notes

// chunkLines splits transcript lines into ordered chunks whose accumulated
// character length stays under maxLen. A line is never split: a single line
// longer than maxLen becomes its own oversized chunk. Concatenating the
// chunks in order reproduces the input exactly.
//
// The boundary check compares the running total before the line is
// appended, so a chunk can close slightly under budget. Downstream callers
// depend on these exact split points; do not tighten the packing.
func chunkLines(lines []string, maxLen int) [][]string {
	var chunks [][]string
	var current []string
	length := 0

	for _, line := range lines {
		if length+len(line) > maxLen && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			length = 0
		}
		current = append(current, line)
		length += len(line)
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}
