package bot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockWebsocketConn is a mock implementation of WebsocketConnInterface for testing
type MockWebsocketConn struct {
	frames     []mockFrame
	written    []string
	failWrite  bool
	closeCalls int
}

type mockFrame struct {
	messageType int
	data        string
}

func (m *MockWebsocketConn) ReadMessage() (int, []byte, error) {
	if len(m.frames) == 0 {
		return 0, nil, errors.New("connection closed")
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f.messageType, []byte(f.data), nil
}

func (m *MockWebsocketConn) WriteMessage(messageType int, data []byte) error {
	if m.failWrite {
		return errors.New("broken pipe")
	}
	m.written = append(m.written, string(data))
	return nil
}

func (m *MockWebsocketConn) Close() error {
	m.closeCalls++
	return nil
}

func TestTwitchConn_ReadLine_SplitsFrames(t *testing.T) {
	ws := &MockWebsocketConn{frames: []mockFrame{
		{websocket.TextMessage, ":tmi.twitch.tv 001 bot :Welcome\r\n:tmi.twitch.tv 002 bot :Host\r\n"},
		{websocket.BinaryMessage, "ignored"},
		{websocket.TextMessage, "PING :tmi.twitch.tv\r\n"},
	}}
	conn := NewTwitchConn(ws)

	var lines []string
	for {
		line, err := conn.ReadLine()
		if err != nil {
			assert.Contains(t, err.Error(), "failed to read from websocket")
			break
		}
		lines = append(lines, line)
	}

	assert.Equal(t, []string{
		":tmi.twitch.tv 001 bot :Welcome\r",
		":tmi.twitch.tv 002 bot :Host\r",
		"PING :tmi.twitch.tv\r",
	}, lines)
}

func TestTwitchConn_WriteLine(t *testing.T) {
	ws := &MockWebsocketConn{}
	conn := NewTwitchConn(ws)

	require.NoError(t, conn.WriteLine("PASS oauth:abcdefghijkl"))
	require.NoError(t, conn.WriteLine("NICK framebot"))

	assert.Equal(t, []string{"PASS oauth:abcdefghijkl", "NICK framebot"}, ws.written)
}

func TestTwitchConn_WriteLine_Error(t *testing.T) {
	conn := NewTwitchConn(&MockWebsocketConn{failWrite: true})

	err := conn.WriteLine("PONG :tmi.twitch.tv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write to websocket")
}

func TestTwitchConn_Close_Idempotent(t *testing.T) {
	ws := &MockWebsocketConn{}
	conn := NewTwitchConn(ws)

	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())
	assert.Equal(t, 1, ws.closeCalls)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  []string
	}{
		{"single line without terminator", "PING :x", []string{"PING :x"}},
		{"crlf terminated", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"blank lines dropped", "\r\n\na\r\n", []string{"a\r"}},
		{"empty frame", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.frame))
		})
	}
}

func TestMaskLine(t *testing.T) {
	assert.Equal(t, "PASS oauth:***xyz", maskLine("PASS oauth:abcdefghijxyz"))
	assert.Equal(t, "PASS ***", maskLine("PASS short"))
	assert.Equal(t, "NICK framebot", maskLine("NICK framebot"))
}

func TestWebsocketDialer_RoundTrip(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan string, 3)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		for i := 0; i < 3; i++ {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			received <- string(data)
		}
		_ = ws.WriteMessage(websocket.TextMessage, []byte("PING :tmi.twitch.tv\r\n:v!v@v PRIVMSG #bar :!fd Sol 5K\r\n"))
		// Wait for the client to hang up.
		_, _, _ = ws.ReadMessage()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, err := NewWebsocketDialer().Dial(ctx, url)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteLine("PASS oauth:token"))
	require.NoError(t, conn.WriteLine("NICK framebot"))
	require.NoError(t, conn.WriteLine("JOIN #bar"))

	assert.Equal(t, "PASS oauth:token", <-received)
	assert.Equal(t, "NICK framebot", <-received)
	assert.Equal(t, "JOIN #bar", <-received)

	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "PING :tmi.twitch.tv\r", line)

	line, err = conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, ":v!v@v PRIVMSG #bar :!fd Sol 5K\r", line)
}

func TestWebsocketDialer_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := (&WebsocketDialer{}).Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
