package pipeline

import (
	"regexp"
	"strings"
)

var reClause = regexp.MustCompile(`(?i)(IRC[:\s]*[A-Z0-9\s:-]+|IRC\s*\d+|IRC[:\s]*[A-Z]{1,3}\s*:?\s*\d{1,3})`)

// ExtractClause pulls the first IRC citation out of a text fragment, e.g.
// "IRC: SP: 84" or "IRC 67". Empty string when the fragment carries none.
func ExtractClause(text string) string {
	return strings.TrimSpace(reClause.FindString(text))
}
