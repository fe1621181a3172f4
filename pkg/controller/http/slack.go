package http

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/domain/model"
	"github.com/secmon-lab/later/pkg/utils/async"
	"github.com/secmon-lab/later/pkg/utils/errutil"
	"github.com/secmon-lab/later/pkg/utils/logging"
	"github.com/secmon-lab/later/pkg/utils/safe"
	"github.com/slack-go/slack"
)

const (
	slackTimestampHeader = "X-Slack-Request-Timestamp"
	slackSignatureHeader = "X-Slack-Signature"
)

// verifySlackSignature checks the v0 request signature. Timestamps more than five minutes
// away from now are rejected.
func verifySlackSignature(signingSecret, timestamp, signature string, body []byte) error {
	header := http.Header{}
	header.Set(slackTimestampHeader, timestamp)
	header.Set(slackSignatureHeader, signature)

	sv, err := slack.NewSecretsVerifier(header, signingSecret)
	if err != nil {
		return goerr.Wrap(err, "invalid signature headers", goerr.V("timestamp", timestamp))
	}

	if _, err := sv.Write(body); err != nil {
		return goerr.Wrap(err, "failed to compute signature")
	}

	if err := sv.Ensure(); err != nil {
		return goerr.Wrap(err, "signature mismatch", goerr.V("timestamp", timestamp))
	}

	return nil
}

// SlackSignatureMiddleware creates a middleware that verifies Slack request signatures
func SlackSignatureMiddleware(signingSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := io.ReadAll(r.Body)
			if err != nil {
				errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
				return
			}
			defer safe.Close(ctx, r.Body)

			timestamp := r.Header.Get(slackTimestampHeader)
			signature := r.Header.Get(slackSignatureHeader)

			if err := verifySlackSignature(signingSecret, timestamp, signature, body); err != nil {
				errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "slack signature verification failed"), http.StatusUnauthorized)
				return
			}

			// Restore the body so the next handler can parse the form
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			next.ServeHTTP(w, r)
		})
	}
}

// CommandUseCase runs one slash command invocation
type CommandUseCase interface {
	HandleCommand(ctx context.Context, req *model.CommandRequest) error
}

// SlackCommandHandler handles Slack slash command requests
type SlackCommandHandler struct {
	commandUC CommandUseCase
	commands  map[string]bool
}

// NewSlackCommandHandler creates a handler that accepts the given command names, e.g. "/later"
func NewSlackCommandHandler(commandUC CommandUseCase, commands []string) *SlackCommandHandler {
	h := &SlackCommandHandler{
		commandUC: commandUC,
		commands:  make(map[string]bool, len(commands)),
	}
	for _, c := range commands {
		h.commands[c] = true
	}
	return h
}

// ServeHTTP acknowledges the command and handles it asynchronously. The result reaches
// the requester through the command's response URL.
func (h *SlackCommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse slash command"), http.StatusBadRequest)
		return
	}

	logger := logging.From(ctx).With(
		"invocation_id", uuid.Must(uuid.NewV7()).String(),
		"command", cmd.Command,
		"team_id", cmd.TeamID,
	)

	if !h.commands[cmd.Command] {
		logger.Warn("unknown slash command")
		w.WriteHeader(http.StatusOK)
		return
	}

	req := &model.CommandRequest{
		UserID:      cmd.UserID,
		UserName:    cmd.UserName,
		ChannelID:   cmd.ChannelID,
		Text:        cmd.Text,
		Command:     cmd.Command,
		ResponseURL: cmd.ResponseURL,
	}

	// Return 200 immediately to satisfy Slack's 3-second timeout requirement
	w.WriteHeader(http.StatusOK)

	async.Dispatch(logging.With(ctx, logger), func(ctx context.Context) error {
		logging.From(ctx).Info("processing slash command", "request", req)

		if err := h.commandUC.HandleCommand(ctx, req); err != nil {
			return goerr.Wrap(err, "failed to handle slash command")
		}

		return nil
	})
}
