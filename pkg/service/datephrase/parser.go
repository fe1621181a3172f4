package datephrase

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/secmon-lab/later/pkg/domain/model"
)

var (
	// Phrases that point backwards in time are never moved forward
	backwardPattern = regexp.MustCompile(`(?i)\b(ago|yesterday|last|past|before|earlier|today|now)\b`)
	yearPattern     = regexp.MustCompile(`\b\d{4}\b`)

	// Phrases that start with a clock time take a leading "at" or "@"
	clockPattern = regexp.MustCompile(`(?i)^(?:\d|(?:this\s+)?(?:morning|afternoon|evening|noon|midnight)\b)`)
)

// Parser finds date/time expressions in English free text. It is safe for concurrent use.
type Parser struct {
	grammar *when.Parser
}

// New creates a parser with the English grammar. The stock weekday rule is replaced by
// Weekday, which always resolves forward.
func New() *Parser {
	w := when.New(nil)
	w.Add(
		Weekday(rules.Override),
		en.CasualDate(rules.Override),
		en.CasualTime(rules.Override),
		en.Hour(rules.Override),
		en.HourMinute(rules.Override),
		en.Deadline(rules.Override),
		en.PastTime(rules.Override),
		en.ExactMonthDate(rules.Override),
		common.SlashDMY(rules.Override),
	)

	return &Parser{grammar: w}
}

// Extract returns the date phrase to schedule with, or nil when text has no usable phrase.
// ref must be in the requester's location: wall-clock expressions such as "at 9am" are
// resolved in ref's zone. The returned instant is in UTC.
func (x *Parser) Extract(ref time.Time, text string) (*model.DatePhrase, error) {
	candidates, err := x.Candidates(ref, text)
	if err != nil {
		return nil, err
	}

	selected := Select(text, candidates)
	if selected == nil {
		return nil, nil
	}

	selected.At = forward(ref, selected.At, selected.Text).UTC()
	return selected, nil
}

// Candidates returns every date phrase in text, ordered by position. Resolved instants are
// in ref's location and have no forward adjustment applied.
func (x *Parser) Candidates(ref time.Time, text string) ([]model.DatePhrase, error) {
	var found []model.DatePhrase

	// The grammar reports only the first cluster of matches, so it is re-run on the
	// remainder after each one.
	offset := 0
	for offset < len(text) {
		rest := text[offset:]
		res, err := x.grammar.Parse(rest, ref)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse date phrase", goerr.V("text", text), goerr.V("offset", offset))
		}
		if res == nil {
			break
		}

		end := res.Index + len(res.Text)
		if res.Index < 0 || end <= 0 || end > len(rest) || rest[res.Index:end] != res.Text {
			break
		}

		phrase := trimSpan(text, offset+res.Index, offset+end)
		if phrase.Text != "" {
			phrase = withPreposition(text, offset, phrase)
			phrase = withAbbreviationDot(text, phrase)
			phrase.At = res.Time
			found = append(found, phrase)
		}
		offset += end
	}

	return found, nil
}

// trimSpan shrinks text[start:end] to exclude surrounding whitespace and separators that the
// grammar consumes as word boundaries.
func trimSpan(text string, start, end int) model.DatePhrase {
	span := text[start:end]
	left := strings.TrimLeftFunc(span, isSeparator)
	start += len(span) - len(left)
	trimmed := strings.TrimRightFunc(left, isSeparator)

	return model.DatePhrase{Text: trimmed, Index: start}
}

// withPreposition extends phrase over one "at" or "@" right before it when the phrase
// starts with a clock time. The extension never reaches before floor.
func withPreposition(text string, floor int, phrase model.DatePhrase) model.DatePhrase {
	if !clockPattern.MatchString(phrase.Text) {
		return phrase
	}

	before := strings.TrimRightFunc(text[floor:phrase.Index], unicode.IsSpace)
	start := floor + len(before)
	switch {
	case strings.HasSuffix(before, "@"):
		start--
	case len(before) >= 2 && strings.EqualFold(before[len(before)-2:], "at"):
		if r, _ := utf8.DecodeLastRuneInString(before[:len(before)-2]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return phrase
		}
		start -= 2
	default:
		return phrase
	}

	phrase.Text = text[start:phrase.End()]
	phrase.Index = start
	return phrase
}

// withAbbreviationDot extends phrase over the period after an abbreviated weekday ("sat.")
func withAbbreviationDot(text string, phrase model.DatePhrase) model.DatePhrase {
	end := phrase.End()
	if end >= len(text) || text[end] != '.' {
		return phrase
	}

	last := phrase.Text[strings.LastIndexFunc(phrase.Text, unicode.IsSpace)+1:]
	if !isAbbreviatedWeekday(strings.ToLower(last)) {
		return phrase
	}

	phrase.Text = text[phrase.Index : end+1]
	return phrase
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', ';', ':', '!', '?', '(', ')', '-', '–', '—':
		return true
	}
	return unicode.Is(unicode.Quotation_Mark, r)
}

// forward moves an instant that is not after ref into the future, unless the phrase
// explicitly refers to the past or to the present.
//   - a time of day that already passed today moves to tomorrow
//   - a calendar date that already passed this year moves to next year, unless a year is given
func forward(ref, at time.Time, phrase string) time.Time {
	if at.After(ref) || backwardPattern.MatchString(phrase) {
		return at
	}

	behind := ref.Sub(at)
	switch {
	case behind < 24*time.Hour:
		return at.AddDate(0, 0, 1)
	case behind < 366*24*time.Hour && !yearPattern.MatchString(phrase):
		return at.AddDate(1, 0, 0)
	}

	return at
}
