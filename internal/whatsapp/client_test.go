package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visacrony-gateway/internal/config"
	"visacrony-gateway/internal/models"
)

type memRecorder struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (m *memRecorder) RecordMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, *msg)
	return nil
}

func TestSendMessage(t *testing.T) {
	var got GenericMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v19.0/PNID/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	rec := &memRecorder{}
	c := NewClient(&config.Config{
		WhatsAppAPIBase: srv.URL + "/v19.0/",
		WhatsAppToken:   "tok",
		PhoneNumberID:   "PNID",
	}, rec)

	require.NoError(t, c.SendMessage(context.Background(), "919876543210", "hello"))
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "hello", got.Text.Body)

	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "wamid.1", rec.msgs[0].WaID)
	assert.Equal(t, "sent", rec.msgs[0].Status)
	assert.Equal(t, "919876543210", rec.msgs[0].Sender)
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := &memRecorder{}
	c := NewClient(&config.Config{WhatsAppAPIBase: srv.URL, PhoneNumberID: "P"}, rec)

	err := c.SendMessage(context.Background(), "91", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "failed", rec.msgs[0].Status)
	assert.Equal(t, "outgoing-91", rec.msgs[0].WaID)
}
