package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/keepmind9/framebot/internal/bot"
	"github.com/keepmind9/framebot/internal/irc"
	"github.com/keepmind9/framebot/internal/logger"
	"github.com/keepmind9/framebot/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Replier produces the chat reply for a command. ok is false when the
// command should get no answer.
type Replier interface {
	Reply(cmd irc.Command) (text string, ok bool)
}

// Engine owns the connection to Twitch chat. It runs one session at a time
// and starts a new one whenever the transport fails.
type Engine struct {
	config  TwitchConfig
	dialer  bot.Dialer
	replier Replier
	metrics *metrics.Metrics

	mu            sync.RWMutex
	state         SessionState
	onStateChange func(SessionState)
}

// NewEngine creates a new Engine instance. m may be nil.
func NewEngine(config TwitchConfig, dialer bot.Dialer, replier Replier, m *metrics.Metrics) *Engine {
	e := &Engine{
		config:  config,
		dialer:  dialer,
		replier: replier,
		metrics: m,
		state:   StateDisconnected,
	}
	m.SetState(string(StateDisconnected), stateNames())
	return e
}

// OnStateChange registers fn to be called synchronously on every state transition
func (e *Engine) OnStateChange(fn func(SessionState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStateChange = fn
}

// State returns the current session state
func (e *Engine) State() SessionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Run keeps a session alive until ctx is cancelled. Every session failure
// leads straight to a new connection attempt; there is no attempt limit.
func (e *Engine) Run(ctx context.Context) error {
	logger.WithFields(logrus.Fields{
		"endpoint": e.config.Endpoint,
		"nick":     e.config.Name,
		"channels": e.config.Channels,
	}).Info("starting-framebot-engine")

	for attempt := 1; ; attempt++ {
		err := e.runSession(ctx)
		e.setState(StateDisconnected)

		if ctx.Err() != nil {
			logger.Info("engine-stopped")
			return nil
		}

		e.metrics.SessionFailure()
		logger.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err,
		}).Warn("connection-closed-resetting")

		if e.config.ReconnectDelay > 0 {
			select {
			case <-ctx.Done():
				logger.Info("engine-stopped")
				return nil
			case <-time.After(e.config.ReconnectDelay):
			}
		}
	}
}

// runSession dials, sends the setup lines and runs the receive loop until
// the transport fails or ctx is cancelled. It always returns an error.
func (e *Engine) runSession(ctx context.Context) error {
	e.setState(StateConnecting)
	e.metrics.ConnectionAttempt()

	conn, err := e.dialer.Dial(ctx, e.config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	// Closing the connection is the only way to unblock a pending read.
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	e.setState(StateAuthenticating)
	setup := []string{
		irc.Pass(e.config.Token),
		irc.Nick(e.config.Name),
		irc.Join(e.config.Channels),
	}
	for _, line := range setup {
		if err := conn.WriteLine(line); err != nil {
			return fmt.Errorf("failed to send setup line: %w", err)
		}
	}
	e.setState(StateJoined)

	logger.WithField("channels", e.config.Channels).Info("joined-channels")

	e.setState(StateListening)
	for {
		line, err := conn.ReadLine()
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		if err := e.handleLine(conn, line); err != nil {
			return err
		}
	}
}

// handleLine processes one inbound line. Only transport errors are returned.
func (e *Engine) handleLine(conn bot.Conn, line string) error {
	switch frame := irc.Classify(line).(type) {
	case irc.Keepalive:
		e.metrics.InboundLine("keepalive")
		if err := conn.WriteLine(irc.Pong(frame.Payload)); err != nil {
			return fmt.Errorf("failed to answer keepalive: %w", err)
		}
		logger.Debug("keepalive-answered")

	case irc.ChannelMessage:
		e.metrics.InboundLine("channel_message")
		cmd, ok := irc.Extract(frame.Channel, frame.Text)
		if !ok {
			return nil
		}

		logger.WithFields(logrus.Fields{
			"channel": cmd.Channel,
			"command": cmd.Name,
		}).Debug("command-received")

		reply, ok := e.replier.Reply(cmd)
		if !ok {
			return nil
		}
		if err := conn.WriteLine(irc.Privmsg(cmd.Channel, reply)); err != nil {
			return fmt.Errorf("failed to send reply: %w", err)
		}

	case irc.Ignored:
		e.metrics.InboundLine("ignored")
	}
	return nil
}

func (e *Engine) setState(state SessionState) {
	e.mu.Lock()
	prev := e.state
	e.state = state
	fn := e.onStateChange
	e.mu.Unlock()

	if prev != state {
		logger.WithFields(logrus.Fields{
			"from": prev,
			"to":   state,
		}).Debug("session-state-changed")
	}
	e.metrics.SetState(string(state), stateNames())
	if fn != nil {
		fn(state)
	}
}

func stateNames() []string {
	names := make([]string, len(allStates))
	for i, s := range allStates {
		names[i] = string(s)
	}
	return names
}
