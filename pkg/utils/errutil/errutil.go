package errutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/utils/logging"
)

// Handle logs the error with a message and reports it to Sentry when a client is configured.
// It returns the error unchanged so that callers can keep propagating it.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	report(ctx, err, msg)

	return err
}

// HandleHTTP logs the error and writes the status text as the response. The error itself
// stays in the log.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	if statusCode >= http.StatusInternalServerError {
		report(ctx, err, "HTTP error")
	}

	http.Error(w, http.StatusText(statusCode), statusCode)
}

// report sends the error to Sentry. CaptureException is a no-op when Sentry is not initialized.
func report(ctx context.Context, err error, msg string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub = hub.Clone()

	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if ge := goerr.Unwrap(err); ge != nil {
			values := sentry.Context{}
			for k, v := range ge.Values() {
				values[fmt.Sprint(k)] = v
			}
			scope.SetContext("goerr", values)
		}
	})

	if evID := hub.CaptureException(err); evID != nil {
		logging.From(ctx).Info("error reported to sentry", "event_id", *evID)
	}
}
