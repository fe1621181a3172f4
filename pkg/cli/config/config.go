package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// DefaultCommand is served when no configuration file names any command
const DefaultCommand = "/later"

// AppConfig represents the application configuration
type AppConfig struct {
	Commands []string `toml:"commands"`

	path string
}

func (x *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &x.path,
			Sources:     cli.EnvVars("LATER_CONFIG"),
		},
	}
}

func (x AppConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Any("commands", x.Commands),
	)
}

// Validate checks if the AppConfig is valid
func (x *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cmd := range x.Commands {
		if !strings.HasPrefix(cmd, "/") || len(cmd) < 2 || strings.ContainsAny(cmd, " \t\n") {
			return goerr.Wrap(ErrInvalidCommandName, "command must be a single word starting with '/'",
				goerr.V(CommandKey, cmd))
		}
		if seen[cmd] {
			return goerr.Wrap(ErrDuplicateCommand, "command is listed twice", goerr.V(CommandKey, cmd))
		}
		seen[cmd] = true
	}
	return nil
}

// Configure loads the file given by --config, or the defaults when no file is given
func (x *AppConfig) Configure() error {
	if x.path != "" {
		loaded, err := LoadAppConfiguration(x.path)
		if err != nil {
			return err
		}
		x.Commands = loaded.Commands
	}

	if len(x.Commands) == 0 {
		x.Commands = []string{DefaultCommand}
	}
	return nil
}

// Path returns the configuration file path, empty when none was given
func (x *AppConfig) Path() string {
	return x.path
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()),
		)
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	config.path = path
	return &config, nil
}
