package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	AppID           string
	GuildID         string
	DiscordToken    string
	PublicKey       string
	ChannelName     string
	LeetCodeBaseURL string
	RequestTimeout  time.Duration
	ExitAfterRun    bool
	LogLevel        slog.Level
	LogFormat       string
}

const (
	defaultBaseURL   = "https://leetcode.com"
	defaultTimeout   = time.Duration(0) // no timeout
	defaultLogLevel  = slog.LevelInfo
	defaultLogFormat = "json"
)

// Load builds a Config from environment variables, reading a .env file first
// when one exists. Missing values are left empty; they surface later as
// authentication or channel lookup failures.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		AppID:           os.Getenv("APP_ID"),
		GuildID:         os.Getenv("GUILD_ID"),
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		PublicKey:       os.Getenv("PUBLIC_KEY"),
		ChannelName:     os.Getenv("LEETCODE_CHALLENGES_CHANNEL"),
		LeetCodeBaseURL: strings.TrimRight(getenvDefault("LEETCODE_BASE_URL", defaultBaseURL), "/"),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		ExitAfterRun:    parseBoolDefault("EXIT_AFTER_RUN", false),
		LogLevel:        parseLevelDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat:       strings.ToLower(getenvDefault("LOG_FORMAT", defaultLogFormat)),
	}

	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// Missing lists the names of unset variables the bot depends on.
func (c *Config) Missing() []string {
	var missing []string
	if c.DiscordToken == "" {
		missing = append(missing, "DISCORD_TOKEN")
	}
	if c.ChannelName == "" {
		missing = append(missing, "LEETCODE_CHALLENGES_CHANNEL")
	}
	return missing
}

// RequireCommandRegistration checks the values needed to register guild commands.
func (c *Config) RequireCommandRegistration() error {
	var missing []string
	if c.AppID == "" {
		missing = append(missing, "APP_ID")
	}
	if c.GuildID == "" {
		missing = append(missing, "GUILD_ID")
	}
	if c.DiscordToken == "" {
		missing = append(missing, "DISCORD_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func parseLevelDefault(key string, fallback slog.Level) slog.Level {
	if val := os.Getenv(key); val != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(val)); err == nil {
			return level
		}
	}
	return fallback
}
