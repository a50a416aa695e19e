package notifications

import (
	"time"

	"instaclone/internal/middleware"
	"instaclone/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. The notification stream is
	// server-to-client, so inbound frames are only control traffic.
	maxMessageSize = 4096

	// Outbound buffer per client.
	sendBufferSize = 256
)

// Client is the middleman between one websocket connection and the presence
// directory. Each authenticated user holds at most one live Client.
type Client struct {
	directory *Directory

	// The websocket connection.
	Conn *websocket.Conn

	// Buffered channel of outbound messages.
	Send chan []byte

	// UserID for this client
	UserID uint
}

// NewClient creates a new Client instance.
func NewClient(directory *Directory, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		directory: directory,
		Conn:      conn,
		UserID:    userID,
		Send:      make(chan []byte, sendBufferSize),
	}
}

// ReadPump pumps messages from the websocket connection until the peer goes
// away, then unregisters the client. The stream is one-way, so inbound data
// frames are drained and discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.directory.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { _ = c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				middleware.Logger.Warn("notification stream read error", "user_id", c.UserID, "error", err)
			}
			break
		}
	}
}

// WritePump pumps messages from the Send channel to the websocket connection
// and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The directory closed the channel.
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend attempts to enqueue a message without blocking. It reports whether
// the message was accepted; a full buffer or a closed channel drops the
// message and is counted, never propagated.
func (c *Client) TrySend(message []byte) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			observability.WebSocketBackpressureDrops.WithLabelValues("closed").Inc()
			sent = false
		}
	}()

	select {
	case c.Send <- message:
		return true
	default:
		observability.WebSocketBackpressureDrops.WithLabelValues("full").Inc()
		middleware.Logger.Warn("notification buffer full, dropping message", "user_id", c.UserID)
		return false
	}
}
