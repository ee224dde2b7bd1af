package ws

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one WebSocket connection of an account.
type Client struct {
	accountID uuid.UUID
	conn      *websocket.Conn
	send      chan Message
	hub       *Hub
}

// NewClient wraps an upgraded connection.
func NewClient(hub *Hub, accountID uuid.UUID, conn *websocket.Conn) *Client {
	return &Client{
		accountID: accountID,
		conn:      conn,
		send:      make(chan Message, clientBuffer),
		hub:       hub,
	}
}

// pongWait is how long a connection may stay silent before it is considered dead.
func (c *Client) pongWait() time.Duration {
	return c.hub.pingInterval * 10 / 9
}

// readPump discards inbound frames and keeps the read deadline alive through pongs.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("WebSocket read error",
					slog.String("account_id", c.accountID.String()),
					slog.Any("error", err),
				)
			}

			return
		}
	}
}

// writePump writes queued messages and pings until the send channel is closed.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.hub.logger.Debug("WebSocket write failed",
					slog.String("account_id", c.accountID.String()),
					slog.Any("error", err),
				)

				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
