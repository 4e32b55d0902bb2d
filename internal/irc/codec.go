// Package irc implements the subset of the Twitch IRC line protocol the bot speaks.
//
// Inbound lines are classified into keepalives, channel messages, or noise;
// channel messages that start with the command prefix are split into a
// Command. Outbound helpers build the handful of frames the bot sends.
//
// # Inbound frames
//
//   - PING <payload>                    → Keepalive
//   - ... PRIVMSG #<channel> :<text>    → ChannelMessage
//   - anything else                     → Ignored
//
// Twitch sends many other line types (JOIN, 001, USERNOTICE, ...). They are
// expected noise and are never reported as errors.
package irc

import (
	"regexp"
	"strings"
)

const keepaliveMarker = "PING"

// privmsgPattern is compiled once at init and only read afterwards.
var privmsgPattern = regexp.MustCompile(`PRIVMSG #([^\s]*) :(.*)`)

// Frame is the classification of one inbound line.
// The set of implementations is closed: Keepalive, ChannelMessage and Ignored.
type Frame interface {
	frame()
}

// Keepalive is a PING from the server. Payload is echoed back in the PONG.
type Keepalive struct {
	Payload string
}

// ChannelMessage is a PRIVMSG addressed to a channel.
type ChannelMessage struct {
	Channel string
	Text    string
}

// Ignored is any line the bot does not act on.
type Ignored struct{}

func (Keepalive) frame()      {}
func (ChannelMessage) frame() {}
func (Ignored) frame()        {}

// Classify turns a raw inbound line into a Frame.
func Classify(line string) Frame {
	if strings.HasPrefix(line, keepaliveMarker) {
		payload := ""
		if _, rest, found := strings.Cut(trimCR(line), " "); found {
			payload = rest
		}
		return Keepalive{Payload: payload}
	}

	m := privmsgPattern.FindStringSubmatch(line)
	if m == nil {
		return Ignored{}
	}
	return ChannelMessage{
		Channel: trimCR(m[1]),
		Text:    trimCR(m[2]),
	}
}

func trimCR(s string) string {
	return strings.TrimRight(s, "\r")
}
