package slack

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/domain/model"
	"github.com/secmon-lab/later/pkg/domain/types"
	"github.com/slack-go/slack"
)

const responseTypeEphemeral = "ephemeral"

// client implements Service interface
type client struct {
	api        *slack.Client
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*clientConfig)

type clientConfig struct {
	apiURL     string
	httpClient *http.Client
}

// WithAPIURL overrides the Slack Web API base URL. The URL must end with a slash.
func WithAPIURL(url string) Option {
	return func(c *clientConfig) {
		c.apiURL = url
	}
}

// WithHTTPClient sets the HTTP client used for Web API calls and response URLs
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// New creates a new Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	cfg := &clientConfig{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []slack.Option{slack.OptionHTTPClient(cfg.httpClient)}
	if cfg.apiURL != "" {
		apiOpts = append(apiOpts, slack.OptionAPIURL(cfg.apiURL))
	}

	return &client{
		api:        slack.New(token, apiOpts...),
		httpClient: cfg.httpClient,
	}, nil
}

// GetUserLocalization retrieves the user's timezone and locale from users.info
func (c *client) GetUserLocalization(ctx context.Context, userID string) (*model.Localization, error) {
	if userID == "" {
		return nil, goerr.New("user ID is required")
	}

	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user info", goerr.V("user_id", userID))
	}

	if user.TZ == "" {
		return nil, goerr.Wrap(ErrNoTimezone, "user info has no tz", goerr.V("user_id", userID))
	}

	loc, err := time.LoadLocation(user.TZ)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidTimezone, "failed to load user timezone",
			goerr.V("user_id", userID),
			goerr.V("tz", user.TZ),
			goerr.V("cause", err.Error()),
		)
	}

	return &model.Localization{
		Timezone: user.TZ,
		Locale:   user.Locale,
		Location: loc,
	}, nil
}

// ScheduleMessage calls chat.scheduleMessage. post_at is sent in whole seconds, truncated.
func (c *client) ScheduleMessage(ctx context.Context, req *model.ScheduleRequest) (*model.ScheduleOutcome, error) {
	postAt := strconv.FormatInt(req.PostAt.Unix(), 10)

	_, scheduledID, err := c.api.ScheduleMessageContext(ctx, req.ChannelID, postAt,
		slack.MsgOptionText(req.Text, false),
		slack.MsgOptionBlocks(scheduledMessageBlocks(req.Text, req.SenderName)...),
	)
	if err != nil {
		return classifyScheduleError(err, req)
	}

	return &model.ScheduleOutcome{
		Result:             types.ScheduleResultScheduled,
		ScheduledMessageID: scheduledID,
	}, nil
}

// Respond posts an ephemeral reply to the response URL of a slash command
func (c *client) Respond(ctx context.Context, responseURL string, reply *model.Reply) error {
	msg := &slack.WebhookMessage{
		Text:         reply.Text,
		ResponseType: responseTypeEphemeral,
		Blocks:       &slack.Blocks{BlockSet: replyBlocks(reply)},
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, responseURL, c.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post response", goerr.V("text", reply.Text))
	}

	return nil
}

// classifyScheduleError turns a platform error code into an outcome. Anything that is not
// a platform decision about the request is returned as an error.
func classifyScheduleError(err error, req *model.ScheduleRequest) (*model.ScheduleOutcome, error) {
	var resp slack.SlackErrorResponse
	if !errors.As(err, &resp) {
		return nil, goerr.Wrap(err, "failed to schedule message",
			goerr.V("channel_id", req.ChannelID),
			goerr.V("post_at", req.PostAt),
		)
	}

	switch {
	case resp.Err == ErrCodeTimeInPast:
		return &model.ScheduleOutcome{Result: types.ScheduleResultRejectedPast, Reason: resp.Err}, nil
	case resp.Err == ErrCodeTimeTooFar:
		return &model.ScheduleOutcome{Result: types.ScheduleResultRejectedTooFar, Reason: resp.Err}, nil
	case authErrorCodes[resp.Err]:
		return nil, goerr.Wrap(err, "slack rejected bot credentials",
			goerr.V("code", resp.Err),
			goerr.V("channel_id", req.ChannelID),
		)
	default:
		return &model.ScheduleOutcome{Result: types.ScheduleResultRejectedOther, Reason: resp.Err}, nil
	}
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

// scheduledMessageBlocks attributes the message to the requester, since Slack posts it as the bot
func scheduledMessageBlocks(text, sender string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(markdown(text), nil, nil),
		slack.NewContextBlock("", markdown("From @"+sender)),
	}
}

func replyBlocks(reply *model.Reply) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(markdown(reply.Text), nil, nil),
	}
	if reply.Context != "" {
		blocks = append(blocks, slack.NewContextBlock("", markdown(reply.Context)))
	}
	return blocks
}
