package slack

// Export internal functions for testing
var (
	ClassifyScheduleError  = classifyScheduleError
	ScheduledMessageBlocks = scheduledMessageBlocks
	ReplyBlocks            = replyBlocks
)
