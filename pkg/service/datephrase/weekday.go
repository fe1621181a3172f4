package datephrase

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when/rules"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tues":      time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thurs":     time.Thursday,
	"thur":      time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// isAbbreviatedWeekday reports whether word is a short weekday name such as "fri"
func isAbbreviatedWeekday(word string) bool {
	_, ok := weekdayNames[word]
	return ok && len(word) < len("sunday")
}

var weekdayModifiers = map[string]bool{
	"this":   true,
	"next":   true,
	"coming": true,
	"last":   true,
	"past":   true,
}

// Weekday matches "friday", "on fri", "this friday", "next friday", "last friday".
//
// Everything except "last"/"past" resolves to the next occurrence strictly after the
// reference day: on a Friday, "friday" means seven days later. The time of day is kept
// from the reference instant unless another rule sets it.
func Weekday(s rules.Strategy) rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile(`(?i)(?:\W|^)` +
			`((?:on\s+)?(?:(this|next|coming|last|past)\s+)?` +
			`(sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat))` +
			`(?:\W|$)`),
		Applier: func(m *rules.Match, c *rules.Context, o *rules.Options, ref time.Time) (bool, error) {
			if c.Duration != 0 && s != rules.Override {
				return false, nil
			}

			var (
				day      time.Weekday
				found    bool
				modifier string
			)
			for _, capture := range m.Captures {
				word := strings.ToLower(strings.TrimSpace(capture))
				if d, ok := weekdayNames[word]; ok {
					day, found = d, true
				}
				if weekdayModifiers[word] {
					modifier = word
				}
			}
			if !found {
				return false, nil
			}

			c.Duration = time.Duration(daysUntil(ref.Weekday(), day, modifier)) * 24 * time.Hour
			return true, nil
		},
	}
}

// daysUntil returns the signed number of days from one weekday to the target occurrence of another
func daysUntil(from, to time.Weekday, modifier string) int {
	if modifier == "last" || modifier == "past" {
		back := (int(from) - int(to) + 7) % 7
		if back == 0 {
			back = 7
		}
		return -back
	}

	diff := (int(to) - int(from) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return diff
}
