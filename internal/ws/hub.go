// Package ws carries chat sessions over websockets. Every connection joins
// the room of its session, so all tabs open on one session see each reply.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"visacrony-gateway/internal/chatbot"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the chat widget is embedded on other origins
	},
}

// Client represents a connected WebSocket client
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	session *chatbot.Session
	send    chan []byte
}

type roomEvent struct {
	room    string
	payload []byte
}

// Hub maintains the set of active clients per session and fans replies out to them
type Hub struct {
	rooms      map[string]map[*Client]bool
	broadcast  chan roomEvent
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan roomEvent),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
// Sends to a stopped hub return without blocking.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, room := range h.rooms {
				for client := range room {
					h.remove(client)
				}
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			room := h.rooms[client.session.ID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[client.session.ID] = room
			}
			room[client] = true
			h.mu.Unlock()
			logrus.WithField("session", client.session.ID).Debug("[WS] client registered")
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			logrus.WithField("session", client.session.ID).Debug("[WS] client unregistered")
		case ev := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[ev.room] {
				select {
				case client.send <- ev.payload:
				default:
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(c *Client) {
	room := h.rooms[c.session.ID]
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.rooms, c.session.ID)
	}
}

// Clients returns the number of connections open on a session.
func (h *Hub) Clients(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[sessionID])
}

type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func encode(eventType string, data interface{}) ([]byte, error) {
	return json.Marshal(WSEvent{Type: eventType, Data: data})
}

// BroadcastEvent sends an event to every client on the session.
func (h *Hub) BroadcastEvent(sessionID, eventType string, data interface{}) {
	payload, err := encode(eventType, data)
	if err != nil {
		logrus.WithError(err).Error("[WS] error marshaling event")
		return
	}
	select {
	case h.broadcast <- roomEvent{room: sessionID, payload: payload}:
	case <-h.done:
	}
}

// Frame is a message from the chat widget.
type Frame struct {
	Type   string          `json:"type"` // send, action, clear, open, close
	Text   string          `json:"text,omitempty"`
	Action *chatbot.Action `json:"action,omitempty"`
}

var errUnknownFrame = errors.New("unknown frame type")

// Apply runs one frame against the session and returns the event to fan
// out: "reply" for send and action, "snapshot" for the rest.
func Apply(ctx context.Context, s *chatbot.Session, f Frame) (string, interface{}, error) {
	switch f.Type {
	case "send":
		r, err := s.Send(ctx, f.Text)
		return "reply", r, err
	case "action":
		if f.Action == nil {
			return "", nil, errors.New("action frame without action")
		}
		r, err := s.Dispatch(ctx, *f.Action)
		return "reply", r, err
	case "clear":
		s.Clear()
	case "open":
		s.Open()
	case "close":
		s.Close()
	default:
		return "", nil, errUnknownFrame
	}
	return "snapshot", s.Snapshot(), nil
}

// ServeChat upgrades the request and attaches it to the session.
func (h *Hub) ServeChat(w http.ResponseWriter, r *http.Request, session *chatbot.Session) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("[WS] upgrade error")
		return
	}
	client := &Client{hub: h, conn: conn, session: session, send: make(chan []byte, 256)}
	if payload, err := encode("snapshot", session.Snapshot()); err == nil {
		client.send <- payload
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		var f Frame
		if err := c.conn.ReadJSON(&f); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				c.reject(err)
				continue
			}
			return
		}

		event, data, err := Apply(context.Background(), c.session, f)
		if err != nil {
			c.reject(err)
			continue
		}
		c.hub.BroadcastEvent(c.session.ID, event, data)
	}
}

// reject answers only the sending client.
func (c *Client) reject(err error) {
	payload, mErr := encode("error", map[string]string{"error": err.Error()})
	if mErr != nil {
		return
	}
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()
	if !c.hub.rooms[c.session.ID][c] {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
