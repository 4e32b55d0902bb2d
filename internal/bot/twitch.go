package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/keepmind9/framebot/internal/logger"
	"github.com/sirupsen/logrus"
)

// WebsocketConnInterface defines what we need from *websocket.Conn.
// This allows us to mock it in tests.
type WebsocketConnInterface interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// WebsocketDialer dials the Twitch chat gateway over websocket
type WebsocketDialer struct {
	Dialer *websocket.Dialer
}

// NewWebsocketDialer creates a dialer using gorilla's default settings
func NewWebsocketDialer() *WebsocketDialer {
	return &WebsocketDialer{Dialer: websocket.DefaultDialer}
}

// Dial opens a websocket connection to url
func (d *WebsocketDialer) Dial(ctx context.Context, url string) (Conn, error) {
	dialer := d.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	ws, resp, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect to %s (status %d): %w", url, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	logger.WithField("url", url).Debug("websocket-connected")
	return NewTwitchConn(ws), nil
}

// TwitchConn is a Conn over a websocket carrying IRC text frames
type TwitchConn struct {
	ws      WebsocketConnInterface
	pending []string

	closeOnce sync.Once
	closeErr  error
}

// NewTwitchConn wraps an established websocket connection
func NewTwitchConn(ws WebsocketConnInterface) *TwitchConn {
	return &TwitchConn{ws: ws}
}

// ReadLine returns the next IRC line, reading a new frame when the previous
// one is used up. Empty lines between separators are skipped.
func (c *TwitchConn) ReadLine() (string, error) {
	for len(c.pending) == 0 {
		messageType, data, err := c.ws.ReadMessage()
		if err != nil {
			return "", fmt.Errorf("failed to read from websocket: %w", err)
		}
		if messageType != websocket.TextMessage {
			logger.WithField("type", messageType).Debug("non-text-frame-skipped")
			continue
		}
		c.pending = splitLines(string(data))
	}

	line := c.pending[0]
	c.pending = c.pending[1:]

	logger.WithField("line", line).Debug("received-irc-line")
	return line, nil
}

// WriteLine sends line as a single text frame
func (c *TwitchConn) WriteLine(line string) error {
	if err := c.ws.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
		logger.WithFields(logrus.Fields{
			"line":  maskLine(line),
			"error": err,
		}).Error("failed-to-write-irc-line")
		return fmt.Errorf("failed to write to websocket: %w", err)
	}

	logger.WithField("line", maskLine(line)).Debug("sent-irc-line")
	return nil
}

// Close closes the websocket. It is safe to call more than once.
func (c *TwitchConn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.ws.Close()
	})
	if c.closeErr != nil {
		return fmt.Errorf("failed to close websocket: %w", c.closeErr)
	}
	return nil
}

// splitLines splits a frame on '\n', keeping any '\r' for the codec to strip
func splitLines(frame string) []string {
	parts := strings.Split(frame, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "\r" {
			continue
		}
		lines = append(lines, p)
	}
	return lines
}
