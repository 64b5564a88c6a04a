package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is a middleman between the websocket connection and the hub.
// Inbound messages manage the client's table subscriptions:
//
//	{"type":"subscribe","table":"companies"}
//	{"type":"unsubscribe","table":"companies"}
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	AdminID uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte

	mu     sync.RWMutex
	tables map[string]struct{}
}

type subscriptionMessage struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

func (c *Client) subscribedTo(table string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tables[table]
	return ok
}

func (c *Client) subscribe(table string) {
	c.mu.Lock()
	c.tables[table] = struct{}{}
	c.mu.Unlock()
}

func (c *Client) unsubscribe(table string) {
	c.mu.Lock()
	delete(c.tables, table)
	c.mu.Unlock()
}

// readPump consumes subscription messages until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for admin %s: %v", c.AdminID, err)
			}
			break
		}

		var msg subscriptionMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Table == "" {
			continue
		}
		switch msg.Type {
		case "subscribe":
			c.subscribe(msg.Table)
		case "unsubscribe":
			c.unsubscribe(msg.Table)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
