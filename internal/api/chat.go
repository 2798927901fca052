package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"visacrony-gateway/internal/chatbot"
	"visacrony-gateway/internal/ws"
)

type ChatHandler struct {
	Sessions *chatbot.SessionStore
	Hub      *ws.Hub // optional; REST replies are mirrored to open sockets
}

func NewChatHandler(sessions *chatbot.SessionStore, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{Sessions: sessions, Hub: hub}
}

func chatStatus(err error) int {
	switch {
	case errors.Is(err, chatbot.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatbot.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, chatbot.ErrEmptyMessage):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// session loads :id or writes the error response.
func (h *ChatHandler) session(c *gin.Context) (*chatbot.Session, bool) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(chatStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func (h *ChatHandler) publish(id, event string, data interface{}) {
	if h.Hub != nil && h.Hub.Clients(id) > 0 {
		h.Hub.BroadcastEvent(id, event, data)
	}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	s := h.Sessions.Create()
	c.JSON(http.StatusCreated, s.Snapshot())
}

func (h *ChatHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	h.Sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type SendChatRequest struct {
	Text string `json:"text"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := s.Send(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(chatStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.publish(s.ID, "reply", reply)
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) DispatchAction(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var action chatbot.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if action.Kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required"})
		return
	}

	reply, err := s.Dispatch(c.Request.Context(), action)
	if err != nil {
		c.JSON(chatStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.publish(s.ID, "reply", reply)
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) lifecycle(apply func(*chatbot.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := h.session(c)
		if !ok {
			return
		}
		apply(s)
		snap := s.Snapshot()
		h.publish(s.ID, "snapshot", snap)
		c.JSON(http.StatusOK, snap)
	}
}

func (h *ChatHandler) Clear() gin.HandlerFunc { return h.lifecycle((*chatbot.Session).Clear) }
func (h *ChatHandler) Close() gin.HandlerFunc { return h.lifecycle((*chatbot.Session).Close) }
func (h *ChatHandler) Open() gin.HandlerFunc  { return h.lifecycle((*chatbot.Session).Open) }

// ServeWs attaches a websocket to the session.
func (h *ChatHandler) ServeWs(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.Hub.ServeChat(c.Writer, c.Request, s)
}
