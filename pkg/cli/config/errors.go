package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound         = goerr.New("configuration file not found")
	ErrInvalidConfig          = goerr.New("invalid configuration")
	ErrInvalidCommandName     = goerr.New("invalid slash command name")
	ErrDuplicateCommand       = goerr.New("duplicate slash command")
	ErrMissingSlackCredential = goerr.New("slack credential is missing")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	CommandKey    = "command"
)
