package core

import "time"

// SessionState represents the current state of the chat connection
type SessionState string

const (
	StateDisconnected   SessionState = "disconnected"   // No connection; next step is dialing
	StateConnecting     SessionState = "connecting"     // Transport handshake in progress
	StateAuthenticating SessionState = "authenticating" // Sending PASS/NICK
	StateJoined         SessionState = "joined"         // JOIN sent, no acknowledgement awaited
	StateListening      SessionState = "listening"      // Receive loop running
)

// allStates lists every state, in lifecycle order
var allStates = []SessionState{
	StateDisconnected,
	StateConnecting,
	StateAuthenticating,
	StateJoined,
	StateListening,
}

// Config represents the complete framebot configuration structure
type Config struct {
	Twitch    TwitchConfig    `yaml:"twitch"`
	FrameData FrameDataConfig `yaml:"frame_data"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TwitchConfig represents the chat connection settings
type TwitchConfig struct {
	Token          string        `yaml:"token" env:"TWITCH_TOKEN"`                              // OAuth token sent with PASS
	Name           string        `yaml:"name" env:"TWITCH_NAME"`                                // Bot account login sent with NICK
	Channels       []string      `yaml:"channels" env:"TWITCH_CHANNEL" envSeparator:","`        // Channels to join, '#' optional
	Endpoint       string        `yaml:"endpoint" env:"TWITCH_IRC_ADDRESS"`                     // Websocket gateway URL
	ReconnectDelay time.Duration `yaml:"reconnect_delay" env:"FRAMEBOT_RECONNECT_DELAY"`        // Pause before redialing (default: none)
}

// FrameDataConfig represents the frame-data source
type FrameDataConfig struct {
	File string `yaml:"file" env:"FRAMEBOT_FRAME_DATA"`
}

// MetricsConfig represents the prometheus endpoint
type MetricsConfig struct {
	Address string `yaml:"address" env:"FRAMEBOT_METRICS_ADDRESS"` // e.g. ":2112"; empty disables
	Path    string `yaml:"path"`                                   // default: /metrics
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level" env:"FRAMEBOT_LOG_LEVEL"` // debug, info, warn, error
	Format       string `yaml:"format"`                         // json or text
	File         string `yaml:"file"`                           // Log file path
	MaxSize      int    `yaml:"max_size"`                       // Single file max size in MB (default: 100)
	MaxBackups   int    `yaml:"max_backups"`                    // Number of backups to keep (default: 5)
	MaxAge       int    `yaml:"max_age"`                        // Maximum days to retain (default: 30)
	Compress     bool   `yaml:"compress"`                       // Whether to compress old logs
	EnableStdout *bool  `yaml:"enable_stdout"`                  // Also output to stdout (default: true)
}

// StdoutEnabled reports whether logs go to stdout
func (l LoggingConfig) StdoutEnabled() bool {
	return l.EnableStdout == nil || *l.EnableStdout
}
