// Package bot provides the chat transport used by the engine.
//
// The engine talks to Twitch chat through two small interfaces: a Dialer that
// opens a connection and a Conn that reads and writes IRC lines. The
// production implementation tunnels IRC over the Twitch websocket gateway;
// tests substitute in-memory fakes.
//
// # Framing
//
// Twitch may pack several "\r\n"-terminated IRC lines into a single websocket
// text frame. Conn.ReadLine hides this and returns one line per call, in
// arrival order. Outbound lines are sent one per frame.
//
// # Thread Safety
//
// A Conn is owned by a single session goroutine. Close may be called from
// another goroutine to unblock a pending ReadLine.
package bot

import "context"

// Dialer opens connections to the chat gateway
type Dialer interface {
	// Dial connects to url and completes the transport handshake
	Dial(ctx context.Context, url string) (Conn, error)
}

// Conn is a line-oriented connection to the chat gateway
type Conn interface {
	// ReadLine blocks until the next inbound line is available.
	// The returned line keeps any trailing carriage return.
	ReadLine() (string, error)

	// WriteLine sends one outbound line
	WriteLine(line string) error

	// Close releases the connection
	Close() error
}
