package mail

import "strings"

type DetectResult struct {
	IsReport bool
	Score    float64
	Reason   string
}

var detectKeywords = []string{
	"road safety",
	"safety audit",
	"intervention",
	"speed breaker",
	"signage",
	"chainage",
	"estimate",
	"qty",
	"quantity",
	"irc",
}

// DetectReport scores how report-like a message looks: domain keywords in
// the subject and body, digit runs that read like quantities, and document
// attachments. Newsletters and plain correspondence score below the
// threshold and are skipped unprocessed.
func DetectReport(subject, text string, attachmentNames []string) DetectResult {
	subject = strings.ToLower(subject)
	text = strings.ToLower(text)

	score := 0.0
	for _, kw := range detectKeywords {
		if strings.Contains(subject, kw) {
			score += 0.2
		}
		if strings.Contains(text, kw) {
			score += 0.1
		}
	}

	qtyHits := countDigitRuns(text)
	if qtyHits >= 2 {
		score += 0.4
	} else if qtyHits == 1 {
		score += 0.2
	}

	for _, name := range attachmentNames {
		ln := strings.ToLower(name)
		if strings.HasSuffix(ln, ".pdf") || strings.HasSuffix(ln, ".docx") ||
			strings.HasSuffix(ln, ".csv") || strings.HasSuffix(ln, ".xlsx") {
			score += 0.25
			break
		}
	}

	if score > 1 {
		score = 1
	}

	isReport := score >= 0.45
	reason := "rules_negative"
	if isReport {
		reason = "rules_positive"
	}
	return DetectResult{IsReport: isReport, Score: score, Reason: reason}
}

func countDigitRuns(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			count++
			for i+1 < len(text) && text[i+1] >= '0' && text[i+1] <= '9' {
				i++
			}
		}
	}
	return count
}
