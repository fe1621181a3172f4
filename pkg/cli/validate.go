package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/later/pkg/cli/config"
	"github.com/secmon-lab/later/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.AppConfig

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate configuration file",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if appCfg.Path() == "" {
				return goerr.New("--config is required")
			}

			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logging.Default().Info("Configuration validation passed", "app", appCfg)

			w := c.Root().Writer
			_, _ = color.New(color.FgGreen).Fprintf(w, "%s is valid\n", appCfg.Path())
			for _, cmd := range appCfg.Commands {
				_, _ = fmt.Fprintf(w, "  %s\n", cmd)
			}
			return nil
		},
	}
}
