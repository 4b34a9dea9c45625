package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs handles one websocket chat connection until the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID uuid.UUID, turns TurnHandler) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256), turns: turns}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Blocks until the connection drops.
}
