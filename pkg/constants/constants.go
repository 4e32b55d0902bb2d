package constants

// Twitch chat gateway
const (
	// TwitchIRCAddress is the websocket gateway for Twitch chat
	TwitchIRCAddress = "ws://irc-ws.chat.twitch.tv:80"
	// MaxTwitchMessageLength is Twitch's chat message byte limit
	MaxTwitchMessageLength = 500
)

// Bot command grammar
const (
	// CommandPrefix marks a chat message as a bot command
	CommandPrefix = "!"
	// FramesCommand is the frame-data query verb
	FramesCommand = "frames"
	// FramesCommandAlias is the short form of FramesCommand
	FramesCommandAlias = "fd"
)

// Defaults
const (
	// DefaultFrameDataFile is the frame-data file used when none is configured
	DefaultFrameDataFile = "framedata.yaml"
	// DefaultLogLevel is used when logging.level is empty
	DefaultLogLevel = "info"
	// DefaultLogMaxSize is the default maximum log file size in MB
	DefaultLogMaxSize = 100
	// DefaultLogMaxBackups is the default number of rotated files to keep
	DefaultLogMaxBackups = 5
	// DefaultLogMaxAge is the default maximum number of days to retain old logs
	DefaultLogMaxAge = 30
)

// Secret masking
const (
	// MinSecretLengthForMasking is the minimum secret length to show any characters
	MinSecretLengthForMasking = 10
	// SecretMaskPrefixLength is the length of prefix to show before masking
	SecretMaskPrefixLength = 6
	// SecretMaskSuffixLength is the length of suffix to show after masking
	SecretMaskSuffixLength = 3
)
