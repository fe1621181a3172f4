package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrUnknownScheduleResult = errors.New("unknown schedule result")
)

// Context keys for error values
const (
	UserIDKey    = "user_id"
	ChannelIDKey = "channel_id"
	PostAtKey    = "post_at"
)
