package config

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, signingSecret string) *Slack {
	return &Slack{
		botToken:      botToken,
		signingSecret: signingSecret,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewAppConfigForTest creates an AppConfig that loads path on Configure
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}
