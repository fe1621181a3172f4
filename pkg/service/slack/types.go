package slack

import (
	"context"

	"github.com/secmon-lab/later/pkg/domain/model"
)

// Service provides access to the Slack APIs used by scheduled commands
type Service interface {
	// GetUserLocalization retrieves the user's current timezone and locale.
	// It fails when Slack reports no loadable timezone; there is no fallback zone.
	GetUserLocalization(ctx context.Context, userID string) (*model.Localization, error)

	// ScheduleMessage asks Slack to post req.Text to req.ChannelID at req.PostAt.
	// Platform rejections are returned as an outcome. Transport, auth and decoding
	// failures are returned as errors. Nothing is retried.
	ScheduleMessage(ctx context.Context, req *model.ScheduleRequest) (*model.ScheduleOutcome, error)

	// Respond posts an ephemeral reply to a slash command's response URL
	Respond(ctx context.Context, responseURL string, reply *model.Reply) error
}
