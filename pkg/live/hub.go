// Package live pushes feed updates to connected clients over websockets.
package live

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/hushsocial/hush/pkg/pubsub"
)

// Update tells a client to adjust a post's rendered reaction state.
type Update struct {
	Post  string `json:"post"`
	Emoji string `json:"emoji"`
	Added bool   `json:"added"`
}

type Hub struct {
	mu sync.Mutex

	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeWS upgrades a request and keeps the connection registered until
// the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade err: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go h.read(conn)
}

// Run forwards reaction events to every connected client.
func (h *Hub) Run(events <-chan pubsub.Event) {
	for event := range events {
		switch event.Type {
		case pubsub.EventTypeReactionAdded, pubsub.EventTypeReactionRemoved:
		default:
			continue
		}

		post, _ := event.Params["post"].(string)
		emoji, _ := event.Params["emoji"].(string)

		h.Broadcast(Update{
			Post:  post,
			Emoji: emoji,
			Added: event.Type == pubsub.EventTypeReactionAdded,
		})
	}
}

// Broadcast sends an update to every connected client.
func (h *Hub) Broadcast(update Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		err := conn.WriteJSON(update)
		if err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

func (h *Hub) read(conn *websocket.Conn) {
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()

			_ = conn.Close()
			return
		}
	}
}
