package usecase

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/domain/model"
	"github.com/secmon-lab/later/pkg/domain/types"
	"github.com/secmon-lab/later/pkg/service/slack"
)

const (
	clockLayout = "15:04"
	dateLayout  = "Monday 02 January 2006"
)

// FormatWhen renders at relative to the calendar day of ref, in ref's location.
// Later days in the coming week are named by weekday; anything else, past days
// included, gets the full date.
func FormatWhen(at, ref time.Time) string {
	local := at.In(ref.Location())
	clock := local.Format(clockLayout)

	switch days := calendarDays(ref, local); {
	case days == 0:
		return "Today at " + clock
	case days == 1:
		return "Tomorrow at " + clock
	case days > 1 && days < 7:
		return local.Weekday().String() + " at " + clock
	default:
		return local.Format(dateLayout) + " at " + clock
	}
}

// calendarDays counts date changes from a to b. Both must be in the same location.
func calendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func parseFailureReply(req *model.CommandRequest) *model.Reply {
	return &model.Reply{
		Text: fmt.Sprintf("I didn't understand `%s`.", req.Invocation()),
	}
}

func emptyBodyReply(req *model.CommandRequest, when string) *model.Reply {
	return &model.Reply{
		Text: fmt.Sprintf("I understood when (%s), but not what to send. Add a message, e.g. `%s tomorrow at 9am ship the report`.",
			when, req.Command),
	}
}

func outcomeReply(outcome *model.ScheduleOutcome, body, when string) (*model.Reply, error) {
	switch outcome.Result {
	case types.ScheduleResultScheduled:
		return &model.Reply{
			Text:    body,
			Context: "Scheduled for " + when,
		}, nil

	case types.ScheduleResultRejectedPast:
		return &model.Reply{
			Text: fmt.Sprintf("%s is in the past. You can only schedule messages for times in the future.", when),
		}, nil

	case types.ScheduleResultRejectedTooFar:
		return &model.Reply{
			Text: fmt.Sprintf("%s is too far in the future. You can only schedule messages up to %d days in the future.",
				when, slack.ScheduleHorizonDays),
		}, nil

	case types.ScheduleResultRejectedOther:
		return &model.Reply{
			Text: fmt.Sprintf("Slack could not schedule the message for %s (`%s`).", when, outcome.Reason),
		}, nil

	default:
		return nil, goerr.Wrap(ErrUnknownScheduleResult, "cannot render schedule outcome",
			goerr.V("result", outcome.Result),
		)
	}
}
