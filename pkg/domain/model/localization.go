package model

import "time"

// Localization is a user's time settings as reported by Slack at the time of the request
type Localization struct {
	Timezone string         // IANA zone, e.g. "Asia/Tokyo"
	Locale   string         // IETF tag, e.g. "en-US"; empty when Slack does not report one
	Location *time.Location // Loaded Timezone
}

// Now returns the reference instant for an invocation, anchored to the user's zone
func (x *Localization) Now(clock func() time.Time) time.Time {
	return clock().In(x.Location)
}
