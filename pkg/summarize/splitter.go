package summarize

import (
	"regexp"
	"strings"
)

// Splitting happens after newline flattening, so fenced blocks sit on a
// single line and "." never needs to cross newlines.
var codeFenceRe = regexp.MustCompile("(```.*?```)")

// SplitCodeFences splits text into alternating prose and fenced-code
// segments, keeping the backtick fences with their code. Concatenating the
// segments in order reproduces the input.
func SplitCodeFences(text string) []string {
	var segments []string
	last := 0
	for _, loc := range codeFenceRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, text[last:loc[0]])
		}
		segments = append(segments, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, text[last:])
	}
	return segments
}

// IsCodeFence reports whether a segment is a fenced code block that must pass
// through the summarizer untouched.
func IsCodeFence(segment string) bool {
	return strings.HasPrefix(segment, "```")
}
