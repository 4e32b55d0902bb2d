// Package command turns parsed chat commands into replies.
//
// Only the frame-data verbs are recognized. Every other command name is
// ignored without a reply so the bot stays quiet next to other bots sharing
// the channel.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keepmind9/framebot/internal/framedata"
	"github.com/keepmind9/framebot/internal/irc"
	"github.com/keepmind9/framebot/internal/logger"
	"github.com/keepmind9/framebot/internal/metrics"
	"github.com/keepmind9/framebot/pkg/constants"
	"github.com/sirupsen/logrus"
)

// Lookup resolves a character and move query to frame data.
// It returns framedata.ErrUnknownCharacter or framedata.ErrUnknownMove
// (possibly wrapped) when nothing matches.
type Lookup interface {
	Find(characterQuery, moveQuery string) (framedata.Move, error)
}

// recognized maps lower-cased command names to the verb reported in metrics
var recognized = map[string]string{
	constants.FramesCommand:      constants.FramesCommand,
	constants.FramesCommandAlias: constants.FramesCommand,
}

// Dispatcher runs frame-data commands against a Lookup
type Dispatcher struct {
	lookup  Lookup
	metrics *metrics.Metrics
}

// NewDispatcher creates a Dispatcher. m may be nil.
func NewDispatcher(lookup Lookup, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{lookup: lookup, metrics: m}
}

// IsRecognized reports whether name is one of the frame-data verbs, ignoring case
func IsRecognized(name string) bool {
	_, ok := recognized[strings.ToLower(name)]
	return ok
}

// Dispatch runs cmd. handled is false for command names the bot does not
// know; in that case reply and err are empty. Command failures are returned
// as *DispatchError.
func (d *Dispatcher) Dispatch(cmd irc.Command) (reply string, handled bool, err error) {
	if !IsRecognized(cmd.Name) {
		return "", false, nil
	}

	move, err := d.frames(cmd.Args)
	if err != nil {
		return "", true, err
	}
	return FormatMove(move), true, nil
}

// Reply runs cmd and renders the text to send back, success or failure.
// ok is false when nothing should be sent.
func (d *Dispatcher) Reply(cmd irc.Command) (text string, ok bool) {
	reply, handled, err := d.Dispatch(cmd)
	if !handled {
		logger.WithFields(logrus.Fields{
			"channel": cmd.Channel,
			"command": cmd.Name,
		}).Debug("unrecognized-command-ignored")
		return "", false
	}

	verb := recognized[strings.ToLower(cmd.Name)]
	fields := logrus.Fields{
		"channel": cmd.Channel,
		"command": cmd.Name,
		"args":    cmd.Args,
	}

	var dispatchErr *DispatchError
	switch {
	case err == nil:
		d.metrics.ObserveCommand(verb, "ok")
		logger.WithFields(fields).Info("command-answered")
		return reply, true
	case errors.As(err, &dispatchErr):
		d.metrics.ObserveCommand(verb, dispatchErr.Kind.String())
		fields["error"] = dispatchErr.Kind.String()
		logger.WithFields(fields).Info("command-rejected")
		return dispatchErr.Message(), true
	default:
		d.metrics.ObserveCommand(verb, "lookup_error")
		fields["error"] = err
		logger.WithFields(fields).Error("frame-data-lookup-failed")
		return "", false
	}
}

// frames validates the arguments of a frames command and looks the move up
func (d *Dispatcher) frames(args []string) (framedata.Move, error) {
	if len(args) == 0 {
		return framedata.Move{}, errWrongArguments()
	}
	characterQuery := args[0]

	moveQuery := strings.Join(args[1:], " ")
	if moveQuery == "" {
		return framedata.Move{}, errWrongArguments()
	}

	move, err := d.lookup.Find(characterQuery, moveQuery)
	switch {
	case err == nil:
		return move, nil
	case errors.Is(err, framedata.ErrUnknownCharacter):
		return framedata.Move{}, errUnknownCharacter(characterQuery)
	case errors.Is(err, framedata.ErrUnknownMove):
		return framedata.Move{}, errUnknownMove(moveQuery)
	default:
		return framedata.Move{}, fmt.Errorf("failed to look up frame data: %w", err)
	}
}

// FormatMove renders a move on one line in a fixed field order
func FormatMove(m framedata.Move) string {
	return fmt.Sprintf("%s: dmg=(%s) guard=(%s) startup=(%s) active=(%s) recov=(%s) block=(%s) hit=(%s) atklvl=(%s)",
		m.Input, m.Damage, m.Guard, m.Startup, m.Active, m.Recovery, m.OnBlock, m.OnHit, m.Level)
}
