package bot

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the Telegram transport settings.
type Config struct {
	// Token is the bot token from @BotFather.
	Token string

	// Debug enables the Telegram library's request logging.
	Debug bool

	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int
}

// ConfigFromEnv reads the transport settings from ENGTUTOR_* variables,
// falling back to the conventional TELEGRAM_BOT_TOKEN.
func ConfigFromEnv() Config {
	cfg := Config{
		Token:       os.Getenv("ENGTUTOR_TELEGRAM_TOKEN"),
		Debug:       os.Getenv("ENGTUTOR_DEBUG") == "true",
		PollTimeout: 30,
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if v := os.Getenv("ENGTUTOR_POLL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PollTimeout = n
		}
	}
	return cfg
}

// Validate checks that the config can start a bot.
func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New("telegram token is not set (ENGTUTOR_TELEGRAM_TOKEN)")
	}
	return nil
}
