package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// candidate is one rule's outcome before an id is assigned.
type candidate struct {
	Name     string
	Quantity int
	Clause   string
}

type rule func(line string) (candidate, bool)

// Rules run in this order and the first hit wins. The keyword vocabulary is
// consulted before the parenthetical capture: phrases like "speed breaker
// near school (qty: 4)" must land under the keyword name so repeated
// mentions aggregate, and the parenthetical capture would otherwise swallow
// the whole phrase.
var rules = []rule{
	matchStructured,
	matchKeyword,
	matchParenthetical,
	matchFallback,
}

var (
	reStructured = regexp.MustCompile(`(?i)^(.{3,120}?)\s*[-:,]\s*(?:Qty[:\s]*)?(\d{1,7})\s*(?:[-:,]\s*(.*))?$`)
	reParen      = regexp.MustCompile(`(?i)^(.{3,120}?)\s*\(.*?(?:qty|quantity)?[:\s]*?(\d{1,7}).*?\)`)
	reFallback   = regexp.MustCompile(`(?i)(.{3,80}?)\s+(?:-+|–|—)?\s*(?:qty[:\s]*)?(\d{1,7})\b`)
	reDigitRun   = regexp.MustCompile(`\d{1,7}`)
)

// nameKeywords is the fixed intervention vocabulary; earlier entries win
// when several appear in one line.
var nameKeywords = []string{
	"speed breaker",
	"speed hump",
	"speed table",
	"road signage",
	"signage",
	"road marking",
	"pavement marking",
	"guard rail",
	"rumble strip",
	"pedestrian crossing",
	"traffic signal",
}

func classifyLine(line string) (candidate, bool) {
	for _, r := range rules {
		if c, ok := r(line); ok {
			return c, true
		}
	}
	return candidate{}, false
}

// matchStructured handles "<name> - <qty>" and "<name>: <qty> - <clause>"
// shapes anchored to the whole line. The trailing text is kept raw as the
// clause.
func matchStructured(line string) (candidate, bool) {
	m := reStructured.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	return candidate{
		Name:     strings.TrimSpace(m[1]),
		Quantity: parseQuantity(m[2]),
		Clause:   strings.TrimSpace(m[3]),
	}, true
}

// matchKeyword names the item after the matched vocabulary term rather than
// the raw line, so free-form mentions of the same countermeasure merge.
// Quantity is the first digit run anywhere in the line, 0 if absent.
func matchKeyword(line string) (candidate, bool) {
	lower := strings.ToLower(line)
	for _, kw := range nameKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		return candidate{
			Name:     kw,
			Quantity: parseQuantity(reDigitRun.FindString(line)),
			Clause:   ExtractClause(line),
		}, true
	}
	return candidate{}, false
}

func matchParenthetical(line string) (candidate, bool) {
	m := reParen.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	return candidate{
		Name:     strings.TrimSpace(m[1]),
		Quantity: parseQuantity(m[2]),
		Clause:   ExtractClause(line),
	}, true
}

func matchFallback(line string) (candidate, bool) {
	m := reFallback.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	return candidate{
		Name:     strings.TrimSpace(m[1]),
		Quantity: parseQuantity(m[2]),
		Clause:   ExtractClause(line),
	}, true
}

// parseQuantity never fails: anything unparsable is quantity 0.
func parseQuantity(token string) int {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
