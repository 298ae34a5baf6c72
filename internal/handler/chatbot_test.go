package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, client *http.Client, baseURL string, payload []byte) (int, map[string]string) {
	t.Helper()

	resp, err := client.Post(baseURL+RouteChatbot, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestChatbotGreeting(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, out := postChat(t, client, ts.URL, []byte(`{"message":"Hello there"}`))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hi! I'm the event assistant. Ask me about events, registration or feedback.", out["reply"])
}

func TestChatbotEventsBeatsRegister(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	_, out := postChat(t, client, ts.URL, []byte(`{"message":"how do I register for an event"}`))
	assert.Equal(t, "You can view events on the Events page. Which event are you interested in?", out["reply"])
}

func TestChatbotAdminBeatsThanks(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	_, out := postChat(t, client, ts.URL, []byte(`{"message":"thanks admin"}`))
	assert.Equal(t, "Admin can login at /admin-login. Only admins can add events or view participants.", out["reply"])
}

func TestChatbotMalformedBodyGetsFallback(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, out := postChat(t, client, ts.URL, []byte(`not json`))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sorry, I didn't understand. Try asking 'What events are there?' or 'How to register?'", out["reply"])
}

func TestChatbotEmptyBodyGetsFallback(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, out := postChat(t, client, ts.URL, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, out["reply"], "Sorry, I didn't understand.")
}
