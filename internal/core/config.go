// Package core provides the connection engine and configuration management for framebot.
//
// The engine keeps a single IRC-over-websocket session with Twitch chat
// alive, answers keepalives, and routes channel messages that look like bot
// commands to the command dispatcher.
//
// # Configuration
//
// Configuration comes from three layers, later ones winning:
//
//   - an optional YAML file, with ${VAR} references expanded from the environment
//   - a .env file, loaded into the process environment when present
//   - environment variables (TWITCH_TOKEN, TWITCH_NAME, TWITCH_CHANNEL, ...)
//
// # Example Configuration
//
//	twitch:
//	  token: "${TWITCH_TOKEN}"
//	  name: "framebot"
//	  channels: ["somestreamer", "#another"]
//	frame_data:
//	  file: "framedata.yaml"
//	metrics:
//	  address: ":2112"
//	logging:
//	  level: "info"
package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/keepmind9/framebot/internal/irc"
	"github.com/keepmind9/framebot/pkg/constants"
	"gopkg.in/yaml.v3"
)

const DefaultMetricsPath = "/metrics"

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are not an error.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadConfig loads configuration from an optional YAML file, then applies
// environment overrides, defaults and validation. A configuration that is
// missing required settings is an error.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		expandedData, err := expandEnv(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to expand environment variables: %w", err)
		}

		if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := ParseEnv(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// ParseEnv overlays environment variables onto target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// expandEnv replaces ${VAR_NAME} patterns with environment variable values
func expandEnv(input string) (string, error) {
	var missingVars []string

	result := os.Expand(input, func(key string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		missingVars = append(missingVars, key)
		return ""
	})

	if len(missingVars) > 0 {
		return "", fmt.Errorf("missing required environment variables: %s",
			strings.Join(missingVars, ", "))
	}

	return result, nil
}

// validateConfig fills defaults and checks required settings
func validateConfig(config *Config) error {
	if config.Twitch.Endpoint == "" {
		config.Twitch.Endpoint = constants.TwitchIRCAddress
	}
	if config.Twitch.ReconnectDelay < 0 {
		return fmt.Errorf("twitch.reconnect_delay cannot be negative (got %v)", config.Twitch.ReconnectDelay)
	}
	if config.FrameData.File == "" {
		config.FrameData.File = constants.DefaultFrameDataFile
	}
	if config.Metrics.Path == "" {
		config.Metrics.Path = DefaultMetricsPath
	}

	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	if config.Logging.MaxSize == 0 {
		config.Logging.MaxSize = constants.DefaultLogMaxSize
	}
	if config.Logging.MaxBackups == 0 {
		config.Logging.MaxBackups = constants.DefaultLogMaxBackups
	}
	if config.Logging.MaxAge == 0 {
		config.Logging.MaxAge = constants.DefaultLogMaxAge
	}
	switch config.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text (got %q)", config.Logging.Format)
	}

	config.Twitch.Channels = irc.NormalizeChannels(config.Twitch.Channels)

	var missing []string
	if config.Twitch.Token == "" {
		missing = append(missing, "twitch.token (TWITCH_TOKEN)")
	}
	if config.Twitch.Name == "" {
		missing = append(missing, "twitch.name (TWITCH_NAME)")
	}
	if len(config.Twitch.Channels) == 0 {
		missing = append(missing, "twitch.channels (TWITCH_CHANNEL)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	return nil
}
