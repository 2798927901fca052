package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, seen *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/test-model:generateContent"), r.URL.Path)
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRespond(t *testing.T) {
	var req map[string]interface{}
	srv := newServer(t, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Singapore takes "},{"text":"6 working days."}]}}]}`, &req)

	r, err := NewResponder(context.Background(), Config{APIKey: "k", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := r.Respond(context.Background(), "How long for Singapore?")
	require.NoError(t, err)
	assert.Equal(t, "Singapore takes 6 working days.", out)

	gen, ok := req["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 0.7, gen["temperature"], 0.001)
	assert.InDelta(t, 40, gen["topK"], 0.001)
	assert.InDelta(t, 0.95, gen["topP"], 0.001)
	assert.InDelta(t, 1024, gen["maxOutputTokens"], 0.001)
}

func TestRespond_ErrorStatus(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, nil)

	r, err := NewResponder(context.Background(), Config{APIKey: "k", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = r.Respond(context.Background(), "hi")
	assert.Error(t, err)
}

func TestRespond_NoCandidates(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"candidates":[]}`, nil)

	r, err := NewResponder(context.Background(), Config{APIKey: "k", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = r.Respond(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestNewResponder_RequiresKey(t *testing.T) {
	_, err := NewResponder(context.Background(), Config{})
	assert.Error(t, err)
}
