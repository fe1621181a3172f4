package slack

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for Slack service
var (
	ErrNoTimezone      = goerr.New("slack user has no timezone")
	ErrInvalidTimezone = goerr.New("slack user timezone cannot be loaded")
)

// Error codes returned by chat.scheduleMessage
const (
	ErrCodeTimeInPast = "time_in_past"
	ErrCodeTimeTooFar = "time_too_far"
)

// ScheduleHorizonDays is how far ahead chat.scheduleMessage accepts a post_at.
// Slack enforces it; this service only mentions it to users.
const ScheduleHorizonDays = 120

// Platform error codes that mean the bot itself is misconfigured. They are failures of
// the service, not rejections of the user's request.
var authErrorCodes = map[string]bool{
	"not_authed":             true,
	"invalid_auth":           true,
	"account_inactive":       true,
	"token_revoked":          true,
	"token_expired":          true,
	"no_permission":          true,
	"missing_scope":          true,
	"not_allowed_token_type": true,
	"ekm_access_denied":      true,
}
