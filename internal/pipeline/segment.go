package pipeline

import (
	"regexp"
	"strings"
)

// Report text arrives as one blob; sentences and bullet points carry one
// intervention each, so terminators count as line breaks.
var reSegment = regexp.MustCompile(`\r?\n|\.|;|•`)

func Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := reSegment.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
