package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/julirosales079/parrillerosfast/services"
	"github.com/julirosales079/parrillerosfast/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CartHub fans cart change events out to the screens watching a kiosk
// session (customer display, kitchen monitor).
type CartHub struct {
	clients    map[string]map[*websocket.Conn]bool // sessionID -> set of clients
	broadcast  chan BroadcastEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

type Subscription struct {
	Conn      *websocket.Conn
	SessionID string
}

type BroadcastEvent struct {
	SessionID string
	Event     services.CartEvent
}

func NewCartHub() *CartHub {
	return &CartHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.SessionID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.SessionID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a cart event for every subscriber of the session.
func (h *CartHub) Broadcast(sessionID string, ev services.CartEvent) {
	h.broadcast <- BroadcastEvent{SessionID: sessionID, Event: ev}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // kiosk runs same-host
}

// HandleWS upgrades the connection and keeps it registered until the
// client goes away. The stream is one-way; inbound frames are drained
// and dropped.
func (h *CartHub) HandleWS(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, SessionID: sid}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
