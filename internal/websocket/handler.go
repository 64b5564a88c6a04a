package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a websocket connection to the hub. Clients start with
// no subscriptions and opt into tables via subscription messages.
func ServeWs(hub *Hub, c *websocket.Conn, adminID uuid.UUID) {
	client := &Client{
		Hub:     hub,
		Conn:    c,
		AdminID: adminID,
		Send:    make(chan []byte, 256),
		tables:  make(map[string]struct{}),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
