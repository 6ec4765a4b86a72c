// Package config loads the engine's tunables from the environment and an
// optional YAML config file. A Config is loaded once by the binary and
// passed down explicitly; nothing in the engine reads ambient state.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Difficulty is the default AI level: beginner, intermediate,
	// advanced, or expert.
	Difficulty string

	// Search depths, in plies (individual card plays, not whole tricks).
	IntermediateDepth int
	AdvancedDepth     int
	// FallbackDepth is the elevated search depth used when the exact
	// solver fails and we cascade to alpha-beta.
	FallbackDepth int

	// AlphaBetaTimeLimitMs bounds one search decision. Zero means no
	// time limit (the depth cap still bounds the work).
	AlphaBetaTimeLimitMs int

	// DDSPath is the external double-dummy solver binary. Empty disables
	// the oracle entirely (expert falls back to search every time).
	DDSPath      string
	DDSTimeoutMs int

	// NatsURL enables publishing AI-decision events for analytics.
	// Empty means events are dropped.
	NatsURL string

	HumanSeat string
	LogLevel  string
}

func defaults(v *viper.Viper) {
	v.SetDefault("difficulty", "intermediate")
	v.SetDefault("intermediate-depth", 4)
	v.SetDefault("advanced-depth", 8)
	v.SetDefault("fallback-depth", 10)
	v.SetDefault("alphabeta-time-limit-ms", 5000)
	v.SetDefault("dds-path", "")
	v.SetDefault("dds-timeout-ms", 3000)
	v.SetDefault("nats-url", "")
	v.SetDefault("human-seat", "S")
	v.SetDefault("log-level", "info")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Difficulty:           v.GetString("difficulty"),
		IntermediateDepth:    v.GetInt("intermediate-depth"),
		AdvancedDepth:        v.GetInt("advanced-depth"),
		FallbackDepth:        v.GetInt("fallback-depth"),
		AlphaBetaTimeLimitMs: v.GetInt("alphabeta-time-limit-ms"),
		DDSPath:              v.GetString("dds-path"),
		DDSTimeoutMs:         v.GetInt("dds-timeout-ms"),
		NatsURL:              v.GetString("nats-url"),
		HumanSeat:            v.GetString("human-seat"),
		LogLevel:             v.GetString("log-level"),
	}
}

// DefaultConfig returns the built-in defaults without touching the
// environment or the filesystem. Tests use this.
func DefaultConfig() *Config {
	v := viper.New()
	defaults(v)
	return fromViper(v)
}

// Load reads configuration with the usual precedence: explicit config
// file (if found), then BRIDGEPLAY_* environment variables, then the
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("bridgeplay")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName("bridgeplay")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/bridgeplay")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return fromViper(v), nil
}
