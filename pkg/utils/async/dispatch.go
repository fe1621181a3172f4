package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/utils/errutil"
	"github.com/secmon-lab/later/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// The handler gets a background context that keeps the caller's logger but not its
// cancellation, so work continues after the HTTP request that triggered it has been answered.
// Errors and panics are logged and reported; nothing is returned to the caller.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := context.Background()
	if logger := logging.From(ctx); logger != nil {
		bgCtx = logging.With(bgCtx, logger)
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var err error
				switch v := r.(type) {
				case error:
					err = goerr.Wrap(v, "panic in async handler")
				default:
					err = goerr.New("panic in async handler", goerr.V("panic", v))
				}
				_ = errutil.Handle(bgCtx, err, "panic in async handler")
			}
		}()

		if err := handler(bgCtx); err != nil {
			_ = errutil.Handle(bgCtx, err, "async handler failed")
		}
	}()
}
