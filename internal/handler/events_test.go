package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/evreg-go/internal/store"
)

func createEvent(t *testing.T, app *testApp, title, date string) int64 {
	t.Helper()

	event, err := app.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Title: title,
		Date:  sql.NullString{String: date, Valid: date != ""},
	})
	require.NoError(t, err)
	return event.ID
}

func TestEventsPageListsEvents(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	createEvent(t, app, "Hack Night", "2026-10-01")
	createEvent(t, app, "Demo Day", "2026-09-15")

	status, body := getPage(t, client, ts.URL+RouteEvents)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Hack Night")
	assert.Contains(t, body, "Demo Day")
	// Lexicographic date order puts the September event first.
	assert.Less(t, strings.Index(body, "Demo Day"), strings.Index(body, "Hack Night"))
}

func TestGuestEventRegistration(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	eventID := createEvent(t, app, "Hack Night", "2026-10-01")

	status, body := postForm(t, client, ts.URL+"/register_event/1", url.Values{
		"guest_name":  {"Guest Gina"},
		"guest_email": {"gina@example.com"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registered for event successfully!")

	participants, err := app.queries.ListParticipantsByEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Guest Gina", participants[0].Name)
	assert.Equal(t, "gina@example.com", participants[0].Email)
}

func TestLoggedInEventRegistrationUsesSessionName(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	eventID := createEvent(t, app, "Hack Night", "2026-10-01")
	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")
	loginUser(t, client, ts.URL, "alice@example.com", "s3cret-pw")

	status, body := postForm(t, client, ts.URL+"/register_event/1", url.Values{
		"email": {"alice@example.com"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registered for event successfully!")

	participants, err := app.queries.ListParticipantsByEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Alice", participants[0].Name)
}

func TestExplicitNameOverridesSessionName(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	eventID := createEvent(t, app, "Hack Night", "2026-10-01")
	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")
	loginUser(t, client, ts.URL, "alice@example.com", "s3cret-pw")

	postForm(t, client, ts.URL+"/register_event/1", url.Values{
		"name":  {"Alias"},
		"email": {"alias@example.com"},
	})

	participants, err := app.queries.ListParticipantsByEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Alias", participants[0].Name)
}

func TestEventRegistrationMissingContactRejected(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	createEvent(t, app, "Hack Night", "2026-10-01")

	status, body := postForm(t, client, ts.URL+"/register_event/1", url.Values{
		"guest_name": {"No Email"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Please provide name and email to register.")
	assert.Equal(t, int64(0), countRows(t, app.db, "participants"))
}

func TestEventRegistrationForMissingEventStillInserts(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, body := postForm(t, client, ts.URL+"/register_event/9999", url.Values{
		"guest_name":  {"Orphan"},
		"guest_email": {"orphan@example.com"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registered for event successfully!")

	participants, err := app.queries.ListParticipantsByEvent(context.Background(), 9999)
	require.NoError(t, err)
	require.Len(t, participants, 1)
}

func TestEventRegistrationBadID(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, body := postForm(t, client, ts.URL+"/register_event/not-a-number", url.Values{
		"guest_name":  {"Guest"},
		"guest_email": {"guest@example.com"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Invalid event.")
	assert.Equal(t, int64(0), countRows(t, app.db, "participants"))
}

func TestHomeRendersMarkdownDescription(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	_, err := app.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Title:       "Quiz Night",
		Description: sql.NullString{String: "Win **prizes**!", Valid: true},
		Date:        sql.NullString{String: "2026-11-05", Valid: true},
	})
	require.NoError(t, err)

	status, body := getPage(t, client, ts.URL+RouteHome)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<strong>prizes</strong>")
}
