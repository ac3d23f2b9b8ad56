package websocket

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// The hub replaces the widget's render callback: whenever the booking cache
// changes, every connected widget gets a refresh message and re-fetches.
//
// Connections allow only one concurrent writer, so every write goes through
// the single runHub goroutine; handlers and broadcasters only touch channels.

type conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type refreshMessage struct {
	Type string `json:"type"`
}

var (
	register   = make(chan conn)
	unregister = make(chan conn)
	refresh    = make(chan struct{}, 1)
)

func init() {
	go runHub()
}

func runHub() {
	clients := make(map[conn]struct{})
	for {
		select {
		case c := <-register:
			clients[c] = struct{}{}
			log.Printf("Widget connected (%d active)", len(clients))
		case c := <-unregister:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				c.Close()
			}
			log.Printf("Widget disconnected (%d active)", len(clients))
		case <-refresh:
			for c := range clients {
				if err := c.WriteJSON(refreshMessage{Type: "refresh"}); err != nil {
					log.Printf("Error notifying widget: %v", err)
					delete(clients, c)
					c.Close()
				}
			}
		}
	}
}

// Handler upgrades a connection and keeps it registered until it drops.
func Handler() fiber.Handler {
	return websocket.New(func(ws *websocket.Conn) {
		register <- ws
		defer func() { unregister <- ws }()

		// Clients never send anything meaningful; the read loop just
		// detects the close.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})
}

// BroadcastRefresh tells every connected widget to reload its view. Pending
// refreshes coalesce: one queued notification already covers any number of
// cache reloads, and a busy hub must never stall a request handler.
func BroadcastRefresh() {
	select {
	case refresh <- struct{}{}:
	default:
	}
}
