package datephrase

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/secmon-lab/later/pkg/domain/model"
)

// One straight or typographic quote at either end of the message
var quotePattern = regexp.MustCompile(`^['"\p{Pi}]|['"\p{Pf}]$`)

// Body returns the message text left after cutting phrase out of text, along with the
// punctuation that closed the phrase, and removing one layer of surrounding quotes. An
// empty result means the command named no message.
func Body(text string, phrase *model.DatePhrase) string {
	left := strings.TrimSpace(text[:phrase.Index])
	right := strings.TrimLeftFunc(text[phrase.End():], func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(".,;:!?", r)
	})
	right = strings.TrimSpace(right)

	body := strings.TrimSpace(left + " " + right)
	body = quotePattern.ReplaceAllString(body, "")

	return strings.TrimSpace(body)
}
