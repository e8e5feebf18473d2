// Package preview pushes the freshly saved document to open live-preview
// sessions over WebSocket.
package preview

import (
	"encoding/json"
	"log"

	"github.com/glowstudio/landing-builder/internal/models"
)

type envelope struct {
	userID string
	data   []byte
}

// Hub tracks preview sessions per user id and fans document updates out to
// them. Slow sessions are dropped rather than allowed to block the hub.
type Hub struct {
	sessions map[string]map[*Session]bool

	broadcast  chan envelope
	register   chan *Session
	unregister chan *Session
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Session]bool),
		broadcast:  make(chan envelope),
		register:   make(chan *Session),
		unregister: make(chan *Session),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case s := <-h.register:
			if h.sessions[s.userID] == nil {
				h.sessions[s.userID] = make(map[*Session]bool)
			}
			h.sessions[s.userID][s] = true

		case s := <-h.unregister:
			if set, ok := h.sessions[s.userID]; ok {
				if _, ok := set[s]; ok {
					delete(set, s)
					close(s.send)
					if len(set) == 0 {
						delete(h.sessions, s.userID)
					}
				}
			}

		case env := <-h.broadcast:
			for s := range h.sessions[env.userID] {
				select {
				case s.send <- env.data:
				default:
					close(s.send)
					delete(h.sessions[env.userID], s)
				}
			}
		}
	}
}

// DocumentUpdated sends the new document to every preview session of userID.
func (h *Hub) DocumentUpdated(userID string, doc *models.LandingPageData) {
	data, err := json.Marshal(doc)
	if err != nil {
		log.Printf("preview broadcast marshal failed: %v", err)
		return
	}
	h.broadcast <- envelope{userID: userID, data: data}
}
