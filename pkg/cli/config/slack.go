package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	botToken      string
	signingSecret string
	apiURL        string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (users:read, chat:write)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("LATER_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack Signing Secret (for slash command verification)",
			Category:    "Slack",
			Destination: &x.signingSecret,
			Sources:     cli.EnvVars("LATER_SLACK_SIGNING_SECRET"),
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL, for testing against a stub server",
			Category:    "Slack",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("LATER_SLACK_API_URL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
		slog.String("api-url", x.apiURL),
	)
}

// SigningSecret returns the signing secret for request verification
func (x *Slack) SigningSecret() string {
	return x.signingSecret
}

// Validate checks that both credentials needed to serve slash commands are set
func (x *Slack) Validate() error {
	if x.botToken == "" {
		return goerr.Wrap(ErrMissingSlackCredential, "--slack-bot-token is required")
	}
	if x.signingSecret == "" {
		return goerr.Wrap(ErrMissingSlackCredential, "--slack-signing-secret is required")
	}
	return nil
}

// Configure creates the Slack service
func (x *Slack) Configure() (slack.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var opts []slack.Option
	if x.apiURL != "" {
		opts = append(opts, slack.WithAPIURL(x.apiURL))
	}

	svc, err := slack.New(x.botToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack service")
	}
	return svc, nil
}
