package usecase

// Export internal functions for testing
var (
	CalendarDays      = calendarDays
	ParseFailureReply = parseFailureReply
	EmptyBodyReply    = emptyBodyReply
	OutcomeReply      = outcomeReply
)
