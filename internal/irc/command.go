package irc

import (
	"strings"

	"github.com/keepmind9/framebot/pkg/constants"
)

// Command is a bot command parsed from a channel message.
type Command struct {
	Channel string   // Channel the command was sent to, without '#'
	Name    string   // Command name without the prefix, case preserved
	Args    []string // Space-separated arguments, never nil
}

// Extract parses text as a bot command. It returns false when text does not
// start with the command prefix.
//
// The first space separates the command name from the rest; the rest is split
// on single spaces, so consecutive spaces produce empty arguments.
func Extract(channel, text string) (Command, bool) {
	if !strings.HasPrefix(text, constants.CommandPrefix) {
		return Command{}, false
	}

	root, rest, hasArgs := strings.Cut(text, " ")
	args := []string{}
	if hasArgs {
		args = strings.Split(trimCR(rest), " ")
	}

	return Command{
		Channel: channel,
		Name:    strings.TrimPrefix(trimCR(root), constants.CommandPrefix),
		Args:    args,
	}, true
}
