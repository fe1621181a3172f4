package model

import (
	"time"

	"github.com/secmon-lab/later/pkg/domain/types"
)

// DatePhrase is the span of command text recognized as a date/time expression
type DatePhrase struct {
	Text  string    // Literal substring of the command text
	Index int       // Byte offset of Text in the command text
	At    time.Time // Resolved instant, in UTC
}

// End returns the byte offset just after the phrase
func (x *DatePhrase) End() int {
	return x.Index + len(x.Text)
}

// ScheduleRequest is what gets sent to the scheduled-delivery service
type ScheduleRequest struct {
	ChannelID  string
	Text       string
	PostAt     time.Time
	SenderName string
}

// ScheduleOutcome is the result of a scheduling attempt that reached a decision.
// Failures without a platform decision are returned as errors instead.
type ScheduleOutcome struct {
	Result             types.ScheduleResult
	Reason             string // Platform error code for rejections
	ScheduledMessageID string // Set when Result is ScheduleResultScheduled
}

// Reply is an ephemeral message for the requester
type Reply struct {
	Text    string // Main message, also used as notification fallback
	Context string // Optional secondary line rendered in a context block
}
