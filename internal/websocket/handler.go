package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs runs one socket until it closes. onMessage receives each text
// frame.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, onMessage func(text string)) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: sessionID,
		Send:      make(chan []byte, 32),
		onMessage: onMessage,
	}
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
