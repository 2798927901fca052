package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visacrony-gateway/internal/chatbot"
)

func TestApply(t *testing.T) {
	s := chatbot.NewSession("s1", chatbot.Options{})
	ctx := context.Background()

	event, data, err := Apply(ctx, s, Frame{Type: "send", Text: "passport renewal"})
	require.NoError(t, err)
	assert.Equal(t, "reply", event)
	reply := data.(chatbot.Reply)
	require.Len(t, reply.Messages, 2)
	assert.False(t, reply.Messages[0].IsBot)
	assert.True(t, reply.Messages[1].IsBot)

	event, data, err = Apply(ctx, s, Frame{Type: "action", Action: &chatbot.Action{Kind: chatbot.ShowVisaTypes}})
	require.NoError(t, err)
	assert.Equal(t, "reply", event)
	assert.NotEmpty(t, data.(chatbot.Reply).Messages)

	event, data, err = Apply(ctx, s, Frame{Type: "clear"})
	require.NoError(t, err)
	assert.Equal(t, "snapshot", event)
	assert.Len(t, data.(chatbot.Snapshot).Messages, 1)

	_, _, err = Apply(ctx, s, Frame{Type: "close"})
	require.NoError(t, err)
	_, _, err = Apply(ctx, s, Frame{Type: "send", Text: "hi"})
	assert.ErrorIs(t, err, chatbot.ErrSessionClosed)

	_, _, err = Apply(ctx, s, Frame{Type: "action"})
	assert.Error(t, err)
	_, _, err = Apply(ctx, s, Frame{Type: "dance"})
	assert.ErrorIs(t, err, errUnknownFrame)
}

func readEvent(t *testing.T, conn *websocket.Conn) WSEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev WSEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestServeChat_FansOutToSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	session := chatbot.NewSession("room-1", chatbot.Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeChat(w, r, session)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	a, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer a.Close()
	b, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "snapshot", readEvent(t, a).Type)
	assert.Equal(t, "snapshot", readEvent(t, b).Type)

	require.Eventually(t, func() bool { return hub.Clients("room-1") == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.WriteJSON(Frame{Type: "send", Text: "visa price"}))

	for _, conn := range []*websocket.Conn{a, b} {
		ev := readEvent(t, conn)
		assert.Equal(t, "reply", ev.Type)
		raw, err := json.Marshal(ev.Data)
		require.NoError(t, err)
		var reply chatbot.Reply
		require.NoError(t, json.Unmarshal(raw, &reply))
		require.Len(t, reply.Messages, 2)
		assert.Equal(t, "visa price", reply.Messages[0].Text)
	}

	require.NoError(t, a.WriteJSON(Frame{Type: "dance"}))
	ev := readEvent(t, a)
	assert.Equal(t, "error", ev.Type)
}

func TestServeChat_WrongFieldTypeKeepsConnection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	session := chatbot.NewSession("room-2", chatbot.Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeChat(w, r, session)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "snapshot", readEvent(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"send","text":5}`)))
	assert.Equal(t, "error", readEvent(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":}`)))
	assert.Equal(t, "error", readEvent(t, conn).Type)

	require.NoError(t, conn.WriteJSON(Frame{Type: "send", Text: "hello"}))
	assert.Equal(t, "reply", readEvent(t, conn).Type)
}

func TestHub_StoppedHubDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	session := chatbot.NewSession("room-3", chatbot.Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeChat(w, r, session)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "snapshot", readEvent(t, conn).Type)
	require.Eventually(t, func() bool { return hub.Clients("room-3") == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	assert.Equal(t, 0, hub.Clients("room-3"))

	sent := make(chan struct{})
	go func() {
		hub.BroadcastEvent("room-3", "reply", map[string]string{"text": "late"})
		close(sent)
	}()
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a stopped hub")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
