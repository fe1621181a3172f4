package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/domain/model"
	"github.com/secmon-lab/later/pkg/domain/types"
	"github.com/secmon-lab/later/pkg/service/datephrase"
	"github.com/secmon-lab/later/pkg/service/slack"
	"github.com/secmon-lab/later/pkg/utils/logging"
)

// DateParser finds the date phrase of a command text. A nil phrase means no usable date.
type DateParser interface {
	Extract(ref time.Time, text string) (*model.DatePhrase, error)
}

// Plan is what a command text resolves to before anything is sent to Slack
type Plan struct {
	Phrase *model.DatePhrase // nil when no date was found or the date is a range
	Body   string            // Message text with the phrase and one layer of quotes removed
	When   string            // Calendar-relative rendering of Phrase.At
}

// LaterUseCase schedules slash command messages for later delivery
type LaterUseCase struct {
	slackService slack.Service
	parser       DateParser
	clock        func() time.Time
}

// NewLaterUseCase creates a new LaterUseCase instance
func NewLaterUseCase(slackService slack.Service, parser DateParser, clock func() time.Time) *LaterUseCase {
	return &LaterUseCase{
		slackService: slackService,
		parser:       parser,
		clock:        clock,
	}
}

// Plan parses text against ref. ref must be in the requester's location, and When is
// rendered in that location.
func (uc *LaterUseCase) Plan(ref time.Time, text string) (*Plan, error) {
	phrase, err := uc.parser.Extract(ref, text)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract date phrase", goerr.V("text", text))
	}
	if phrase == nil {
		return &Plan{}, nil
	}

	return &Plan{
		Phrase: phrase,
		Body:   datephrase.Body(text, phrase),
		When:   FormatWhen(phrase.At, ref),
	}, nil
}

// HandleCommand runs one slash command invocation to its terminal state. Every terminal
// state except a failure sends exactly one ephemeral reply. Failures are returned and
// the requester gets no reply.
func (uc *LaterUseCase) HandleCommand(ctx context.Context, req *model.CommandRequest) error {
	logger := logging.From(ctx)

	if err := req.Validate(); err != nil {
		return goerr.Wrap(err, "invalid command request")
	}

	loc, err := uc.slackService.GetUserLocalization(ctx, req.UserID)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve user localization", goerr.V(UserIDKey, req.UserID))
	}
	logger.Debug("resolved user localization",
		"timezone", loc.Timezone,
		"locale", loc.Locale,
	)

	// The same reference instant is used for parsing and rendering
	ref := loc.Now(uc.clock)

	reply, err := uc.reply(ctx, req, ref)
	if err != nil {
		return err
	}

	if err := uc.slackService.Respond(ctx, req.ResponseURL, reply); err != nil {
		return goerr.Wrap(err, "failed to send reply", goerr.V(UserIDKey, req.UserID))
	}

	return nil
}

func (uc *LaterUseCase) reply(ctx context.Context, req *model.CommandRequest, ref time.Time) (*model.Reply, error) {
	logger := logging.From(ctx)

	plan, err := uc.Plan(ref, req.Text)
	if err != nil {
		return nil, err
	}

	if plan.Phrase == nil {
		logger.Info("no date found in command", "text", req.Text)
		return parseFailureReply(req), nil
	}
	if plan.Body == "" {
		logger.Info("no message found in command", "text", req.Text, "phrase", plan.Phrase.Text)
		return emptyBodyReply(req, plan.When), nil
	}

	outcome, err := uc.schedule(ctx, &model.ScheduleRequest{
		ChannelID:  req.ChannelID,
		Text:       plan.Body,
		PostAt:     plan.Phrase.At,
		SenderName: req.UserName,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("schedule request finished",
		"result", outcome.Result,
		"reason", outcome.Reason,
		"scheduled_message_id", outcome.ScheduledMessageID,
		"post_at", plan.Phrase.At,
	)

	return outcomeReply(outcome, plan.Body, plan.When)
}

// schedule rejects instants that are already past without asking Slack, and leaves every
// other decision to Slack. It never retries because a retry could post the message twice.
func (uc *LaterUseCase) schedule(ctx context.Context, req *model.ScheduleRequest) (*model.ScheduleOutcome, error) {
	if !req.PostAt.After(uc.clock()) {
		return &model.ScheduleOutcome{
			Result: types.ScheduleResultRejectedPast,
			Reason: slack.ErrCodeTimeInPast,
		}, nil
	}

	outcome, err := uc.slackService.ScheduleMessage(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to schedule message",
			goerr.V(ChannelIDKey, req.ChannelID),
			goerr.V(PostAtKey, req.PostAt),
		)
	}

	return outcome, nil
}
