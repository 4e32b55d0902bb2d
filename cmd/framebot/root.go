package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "framebot",
	Short: "framebot answers fighting-game frame data questions in Twitch chat",
	Long: `framebot is a Twitch chat bot that joins one or more channels and answers
frame data queries such as "!frames Sol 5K" (or "!fd Sol 5K") with the
startup, recovery and advantage of the requested move.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(versionCmd)
}

// defaultConfigLocations lists the config files tried when --config is not given
func defaultConfigLocations() []string {
	return []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/framebot/config.yaml"),
		"/etc/framebot/config.yaml",
	}
}

// resolveConfigPath returns path if set, else the first existing default
// location. An empty result means configuration comes from the environment only.
func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	for _, loc := range defaultConfigLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}
