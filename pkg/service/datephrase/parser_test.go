package datephrase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/later/pkg/service/datephrase"
)

// Monday 2024-01-01 09:00 UTC
var mondayMorning = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestParser_Extract(t *testing.T) {
	parser := datephrase.New()

	t.Run("tomorrow at 3pm", func(t *testing.T) {
		text := "tomorrow at 3pm ship the report"
		phrase, err := parser.Extract(mondayMorning, text)
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()

		gt.Bool(t, phrase.At.Equal(time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC))).True()
		gt.Value(t, phrase.At.Location()).Equal(time.UTC)
		gt.Value(t, text[phrase.Index:phrase.End()]).Equal(phrase.Text)
		gt.Value(t, datephrase.Body(text, phrase)).Equal("ship the report")
	})

	t.Run("no date phrase", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "thanks everyone")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).Nil()
	})

	t.Run("empty text", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).Nil()
	})

	t.Run("next friday is the upcoming friday", func(t *testing.T) {
		text := `next friday "wrap up the quarter"`
		phrase, err := parser.Extract(mondayMorning, text)
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()

		gt.Value(t, phrase.At.Weekday()).Equal(time.Friday)
		gt.Value(t, phrase.At.Day()).Equal(5)
		gt.Value(t, datephrase.Body(text, phrase)).Equal("wrap up the quarter")
	})

	t.Run("bare weekday has no message", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "friday")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Value(t, datephrase.Body("friday", phrase)).Equal("")
	})

	t.Run("same weekday as today resolves to next week", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "monday review the roadmap")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Bool(t, phrase.At.Equal(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))).True()
	})

	t.Run("trailing phrase wins over earlier one", func(t *testing.T) {
		text := "move monday standup to thursday"
		phrase, err := parser.Extract(mondayMorning, text)
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Value(t, phrase.Text).Equal("thursday")
		gt.Value(t, phrase.At.Weekday()).Equal(time.Thursday)
		gt.Value(t, datephrase.Body(text, phrase)).Equal("move monday standup to")
	})

	t.Run("range is not supported", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "from monday to friday on call")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).Nil()
	})

	t.Run("passed time of day rolls to tomorrow", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "at 8am standup")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Bool(t, phrase.At.Equal(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))).True()
	})

	t.Run("relative duration", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "in 3 hours deploy")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Bool(t, phrase.At.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))).True()
	})

	t.Run("past phrase stays in the past", func(t *testing.T) {
		phrase, err := parser.Extract(mondayMorning, "yesterday at 3pm too late")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()
		gt.Bool(t, phrase.At.Before(mondayMorning)).True()
	})

	t.Run("wall clock is read in the requester's zone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		gt.NoError(t, err).Required()

		// 18:00 on Monday in Tokyo
		ref := mondayMorning.In(tokyo)
		phrase, err := parser.Extract(ref, "tomorrow at 9am standup")
		gt.NoError(t, err).Required()
		gt.Value(t, phrase).NotNil().Required()

		gt.Bool(t, phrase.At.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))).True()
		gt.Value(t, phrase.At.In(tokyo).Hour()).Equal(9)
	})
}

func TestParser_ExtractBody(t *testing.T) {
	parser := datephrase.New()
	tests := []struct {
		name   string
		text   string
		phrase string
		body   string
		at     time.Time
	}{
		{"trailing at clock time", "ship the report at 5pm", "at 5pm", "ship the report", time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"leading at clock time", "at 5pm deploy", "at 5pm", "deploy", time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"at noon", "deploy at noon", "at noon", "deploy", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"at hour and minute", "standup at 10:15", "at 10:15", "standup", time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC)},
		{"at sign with space", "deploy @ 5pm", "@ 5pm", "deploy", time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"at sign attached", "deploy @5pm", "@5pm", "deploy", time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"word ending in at is kept", "chat 5pm", "5pm", "chat", time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"abbreviated weekday with period", "sat. party", "sat.", "party", time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)},
		{"trailing abbreviated weekday with period", "bring snacks fri.", "fri.", "bring snacks", time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)},
		{"period after full weekday", "party saturday.", "saturday", "party", time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, err := parser.Extract(mondayMorning, tt.text)
			gt.NoError(t, err).Required()
			gt.Value(t, phrase).NotNil().Required()

			gt.Value(t, phrase.Text).Equal(tt.phrase)
			gt.Value(t, tt.text[phrase.Index:phrase.End()]).Equal(phrase.Text)
			gt.Value(t, datephrase.Body(tt.text, phrase)).Equal(tt.body)
			gt.Bool(t, phrase.At.Equal(tt.at)).True()
		})
	}
}

func TestParser_Deterministic(t *testing.T) {
	parser := datephrase.New()
	inputs := []string{
		"tomorrow at 3pm ship the report",
		`next friday "wrap up the quarter"`,
		"remind the team tomorrow at 9am to ship",
		"in 3 hours deploy",
		"ship the report at 5pm",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			first, err := parser.Extract(mondayMorning, text)
			gt.NoError(t, err).Required()
			gt.Value(t, first).NotNil().Required()

			// Re-parsing the matched phrase alone reproduces the same instant
			again, err := parser.Extract(mondayMorning, first.Text)
			gt.NoError(t, err).Required()
			gt.Value(t, again).NotNil().Required()
			gt.Bool(t, again.At.Equal(first.At)).True()

			// The phrase is gone from the message body
			body := datephrase.Body(text, first)
			gt.Bool(t, strings.Contains(body, first.Text)).False()
		})
	}
}

func TestParser_Candidates(t *testing.T) {
	parser := datephrase.New()
	text := "monday sync, then friday retro"

	candidates, err := parser.Candidates(mondayMorning, text)
	gt.NoError(t, err).Required()
	gt.Array(t, candidates).Length(2).Required()

	for _, c := range candidates {
		gt.Value(t, text[c.Index:c.End()]).Equal(c.Text)
	}
	gt.Value(t, candidates[0].Text).Equal("monday")
	gt.Value(t, candidates[1].Text).Equal("friday")
	gt.Bool(t, candidates[0].Index < candidates[1].Index).True()
}
