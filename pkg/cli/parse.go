package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdParse() *cli.Command {
	var tz string
	var now string

	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Show how a command text would be scheduled, without calling Slack",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tz",
				Usage:       "Requester timezone (IANA name)",
				Value:       "UTC",
				Destination: &tz,
			},
			&cli.StringFlag{
				Name:        "now",
				Usage:       "Reference instant in RFC3339, defaults to the current time",
				Destination: &now,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				return goerr.New("text is required")
			}

			loc, err := time.LoadLocation(tz)
			if err != nil {
				return goerr.Wrap(err, "invalid timezone", goerr.V("tz", tz))
			}

			clock := time.Now
			if now != "" {
				t, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return goerr.Wrap(err, "invalid reference instant", goerr.V("now", now))
				}
				clock = func() time.Time { return t }
			}

			uc := usecase.New(nil, usecase.WithClock(clock))
			ref := clock().In(loc)
			plan, err := uc.Later.Plan(ref, text)
			if err != nil {
				return err
			}

			printPlan(c.Root().Writer, ref, plan)
			return nil
		},
	}
}

func printPlan(w io.Writer, ref time.Time, plan *usecase.Plan) {
	label := color.New(color.FgCyan)
	field := func(name, value string) {
		_, _ = label.Fprintf(w, "%-10s", name+":")
		_, _ = fmt.Fprintln(w, value)
	}

	field("reference", ref.Format(time.RFC3339))

	if plan.Phrase == nil {
		_, _ = color.New(color.FgRed).Fprintln(w, "no date found")
		return
	}

	field("phrase", plan.Phrase.Text)
	field("post_at", plan.Phrase.At.Format(time.RFC3339))
	field("when", plan.When)

	if plan.Body == "" {
		_, _ = color.New(color.FgYellow).Fprintln(w, "no message to send")
		return
	}
	field("message", plan.Body)

	if !plan.Phrase.At.After(ref) {
		_, _ = color.New(color.FgYellow).Fprintln(w, "time is in the past")
		return
	}
	_, _ = color.New(color.FgGreen).Fprintln(w, "ok")
}
