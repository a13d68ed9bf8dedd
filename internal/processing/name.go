package processing

import (
	"regexp"
	"strings"
)

var (
	whitespace     = regexp.MustCompile(`\s+`)
	leadingFiller  = regexp.MustCompile(`(?i)^(buy|get|shop|new|hot|sale|best|top|premium|official)\s+`)
	trailingFiller = regexp.MustCompile(`(?i)\s+(sale|discount|deal|clearance|online|only|now|today|exclusive)$`)
)

// CleanProductName squeezes whitespace and strips at most one leading and one
// trailing marketing filler word from a listing title. The removal is a
// single pass; "Buy Buy Widget" keeps its second "Buy".
func CleanProductName(name string) string {
	cleaned := whitespace.ReplaceAllString(name, " ")
	cleaned = strings.TrimSpace(cleaned)

	cleaned = leadingFiller.ReplaceAllString(cleaned, "")
	cleaned = trailingFiller.ReplaceAllString(cleaned, "")

	return cleaned
}
