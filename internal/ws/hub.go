package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inboundEvent struct {
	client *Client
	msg    Message
}

// Hub owns the live-connection set. Run is the single goroutine through
// which every inbound event is applied, so store mutations and the
// relative order of broadcasts are serialized by construction.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	inbound    chan inboundEvent
	router     *Router
}

func NewHub(router *Router) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundEvent, 256),
		router:     router,
	}
}

// Run processes registrations, disconnects, and inbound events one at a
// time for the life of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client
			log.Printf("ws: client connected: %s", client.ID)

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				h.router.HandleDisconnect(client.ID)
				log.Printf("ws: client disconnected: %s", client.ID)
			}

		case evt := <-h.inbound:
			h.router.Dispatch(h, evt.client, evt.msg)
		}
	}
}

// ServeWS upgrades an HTTP request and hands the connection to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}
	client := newClient(h, conn)
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// Unicast delivers to exactly one connection.
func (h *Hub) Unicast(c *Client, msg []byte) {
	c.enqueue(msg)
}

// Broadcast fans out to every live connection. Only called from the Run
// goroutine, so the client set cannot change mid-iteration; enqueue
// never blocks, so a slow client cannot stall the fan-out.
func (h *Hub) Broadcast(msg []byte) {
	for _, client := range h.clients {
		client.enqueue(msg)
	}
}
