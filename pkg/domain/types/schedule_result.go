package types

import "fmt"

// ScheduleResult represents how a scheduling attempt ended
type ScheduleResult string

const (
	ScheduleResultScheduled      ScheduleResult = "scheduled"
	ScheduleResultRejectedPast   ScheduleResult = "rejected_past"
	ScheduleResultRejectedTooFar ScheduleResult = "rejected_too_far"
	ScheduleResultRejectedOther  ScheduleResult = "rejected_other"
)

// AllScheduleResults returns all valid schedule results
func AllScheduleResults() []ScheduleResult {
	return []ScheduleResult{
		ScheduleResultScheduled,
		ScheduleResultRejectedPast,
		ScheduleResultRejectedTooFar,
		ScheduleResultRejectedOther,
	}
}

// IsValid checks if the schedule result is valid
func (s ScheduleResult) IsValid() bool {
	switch s {
	case ScheduleResultScheduled,
		ScheduleResultRejectedPast,
		ScheduleResultRejectedTooFar,
		ScheduleResultRejectedOther:
		return true
	default:
		return false
	}
}

// IsRejected reports whether the platform refused the request
func (s ScheduleResult) IsRejected() bool {
	return s.IsValid() && s != ScheduleResultScheduled
}

// String returns the string representation of the schedule result
func (s ScheduleResult) String() string {
	return string(s)
}

// ParseScheduleResult parses a string into a ScheduleResult
func ParseScheduleResult(s string) (ScheduleResult, error) {
	result := ScheduleResult(s)
	if !result.IsValid() {
		return "", fmt.Errorf("invalid schedule result: %s", s)
	}
	return result, nil
}
