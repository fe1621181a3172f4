package datephrase

import (
	"strings"

	"github.com/secmon-lab/later/pkg/domain/model"
)

// Words that join two dates into a range ("monday to friday", "3pm-5pm")
var rangeConnectors = map[string]bool{
	"to":         true,
	"until":      true,
	"till":       true,
	"til":        true,
	"through":    true,
	"thru":       true,
	"through to": true,
	"-":          true,
	"–":          true,
	"—":          true,
}

// Select picks the phrase to schedule with from candidates ordered by position in text.
// The last candidate wins. If it closes a range opened by the previous candidate, there is
// no single delivery instant and Select returns nil.
func Select(text string, candidates []model.DatePhrase) *model.DatePhrase {
	if len(candidates) == 0 {
		return nil
	}

	last := candidates[len(candidates)-1]
	if len(candidates) > 1 && closesRange(text, candidates[len(candidates)-2], last) {
		return nil
	}

	return &last
}

func closesRange(text string, prev, last model.DatePhrase) bool {
	if prev.End() > last.Index || last.Index > len(text) {
		return false
	}

	gap := strings.ToLower(strings.TrimSpace(text[prev.End():last.Index]))
	if rangeConnectors[gap] {
		return true
	}

	if gap == "and" {
		before := strings.ToLower(strings.TrimSpace(text[:prev.Index]))
		return strings.HasSuffix(before, "between")
	}

	return false
}
