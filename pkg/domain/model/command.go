package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CommandRequest is a single slash command invocation. It is never modified after it is built.
type CommandRequest struct {
	UserID      string // Requester's Slack user ID
	UserName    string // Requester's Slack handle, used for attribution
	ChannelID   string // Channel the command was invoked in
	Text        string // Raw text after the command name
	Command     string // Command name including the leading slash, e.g. "/later"
	ResponseURL string // Per-invocation URL for ephemeral replies
}

// Validate checks that the request carries everything the scheduler needs
func (x *CommandRequest) Validate() error {
	if x.UserID == "" {
		return goerr.New("user ID is required")
	}
	if x.ChannelID == "" {
		return goerr.New("channel ID is required", goerr.V("user_id", x.UserID))
	}
	if x.ResponseURL == "" {
		return goerr.New("response URL is required", goerr.V("user_id", x.UserID))
	}
	if !strings.HasPrefix(x.Command, "/") {
		return goerr.New("command must start with '/'", goerr.V("command", x.Command))
	}
	return nil
}

// Invocation renders the command as the user typed it
func (x *CommandRequest) Invocation() string {
	if x.Text == "" {
		return x.Command
	}
	return x.Command + " " + x.Text
}

// LogValue omits the response URL, which grants reply access to the invocation
func (x CommandRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", x.UserID),
		slog.String("user_name", x.UserName),
		slog.String("channel_id", x.ChannelID),
		slog.String("command", x.Command),
		slog.String("text", x.Text),
	)
}
