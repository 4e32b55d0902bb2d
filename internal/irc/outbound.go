package irc

import (
	"strings"
	"unicode/utf8"

	"github.com/keepmind9/framebot/pkg/constants"
)

// Pass builds the credential line sent first after connecting.
func Pass(token string) string {
	return "PASS " + token
}

// Nick builds the identity line.
func Nick(name string) string {
	return "NICK " + name
}

// Join builds a single JOIN line for all channels. Channels are expected to be
// normalized already (see NormalizeChannels).
func Join(channels []string) string {
	return "JOIN " + strings.Join(channels, ",")
}

// Pong answers a keepalive with its payload unchanged.
func Pong(payload string) string {
	if payload == "" {
		return keepalivePong
	}
	return keepalivePong + " " + payload
}

const keepalivePong = "PONG"

// Privmsg builds a message to channel (given without '#'). Text longer than
// Twitch's limit is cut at a rune boundary.
func Privmsg(channel, text string) string {
	return "PRIVMSG #" + channel + " :" + truncate(text, constants.MaxTwitchMessageLength)
}

// NormalizeChannels trims each name, drops empty ones and adds the '#' prefix
// where missing.
func NormalizeChannels(channels []string) []string {
	normalized := make([]string, 0, len(channels))
	for _, ch := range channels {
		ch = strings.TrimSpace(ch)
		if ch == "" {
			continue
		}
		if !strings.HasPrefix(ch, "#") {
			ch = "#" + ch
		}
		normalized = append(normalized, ch)
	}
	return normalized
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
