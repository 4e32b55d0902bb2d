package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keepmind9/framebot/internal/core"
	"github.com/keepmind9/framebot/internal/framedata"
	"github.com/spf13/cobra"
)

var (
	validateConfig  string
	validateEnvFile string
	validateJSON    bool
)

// ValidationResult represents the validation result
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Config     string   `json:"config"`
	Channels   []string `json:"channels,omitempty"`
	FrameData  string   `json:"frame_data,omitempty"`
	Characters int      `json:"characters"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate framebot configuration and frame data",
	Long: `Validate the framebot configuration without connecting to Twitch.

This command checks:
  - YAML syntax and ${VAR} expansion
  - Required settings (token, nick, channels)
  - The frame data file and its match patterns

Exit codes:
  0 - Configuration is valid
  1 - Configuration has errors`,
	Run: func(cmd *cobra.Command, args []string) {
		result := runValidate(resolveConfigPath(validateConfig), validateEnvFile)
		outputValidationResult(cmd.OutOrStdout(), result, validateJSON)
		if !result.Valid {
			os.Exit(1)
		}
	},
}

func runValidate(configPath, envFile string) ValidationResult {
	result := ValidationResult{Valid: true, Config: configPath}
	if configPath == "" {
		result.Config = "(environment only)"
	}

	if err := core.LoadDotEnv(envFile); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Channels = cfg.Twitch.Channels
	result.FrameData = cfg.FrameData.File

	store, err := framedata.LoadFile(cfg.FrameData.File)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Characters = len(store.Characters())
	}

	result.Warnings = validateConfigDetails(cfg)
	return result
}

// validateConfigDetails reports settings that are legal but probably unintended
func validateConfigDetails(cfg *core.Config) []string {
	var warnings []string

	if cfg.Twitch.ReconnectDelay == 0 {
		warnings = append(warnings, "twitch.reconnect_delay is 0 - failed connections are retried immediately and without limit")
	}
	if !strings.HasPrefix(cfg.Twitch.Token, "oauth:") {
		warnings = append(warnings, "twitch.token has no oauth: prefix - Twitch expects PASS oauth:<token>")
	}
	if cfg.Metrics.Address == "" {
		warnings = append(warnings, "metrics.address is empty - prometheus metrics are not exposed")
	}

	return warnings
}

func outputValidationResult(w io.Writer, result ValidationResult, jsonFormat bool) {
	if jsonFormat {
		output, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(w, "{\"error\": \"failed to marshal json: %v\"}\n", err)
			return
		}
		fmt.Fprintln(w, string(output))
		return
	}

	if result.Valid {
		fmt.Fprintln(w, "✓ Configuration is valid")
		fmt.Fprintf(w, "  - Config: %s\n", result.Config)
		fmt.Fprintf(w, "  - Channels: %v\n", result.Channels)
		fmt.Fprintf(w, "  - Frame data: %s (%d characters)\n", result.FrameData, result.Characters)
	} else {
		fmt.Fprintln(w, "❌ Configuration validation failed:")
		fmt.Fprintln(w, "\nErrors:")
		for _, errMsg := range result.Errors {
			fmt.Fprintf(w, "  - %s\n", errMsg)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\n⚠️  Warnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfig, "config", "c", "", "Configuration file path")
	validateCmd.Flags().StringVar(&validateEnvFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
}
