package datephrase

// Export internal functions for testing
var (
	DaysUntil = daysUntil
	Forward   = forward
	TrimSpan  = trimSpan
)
