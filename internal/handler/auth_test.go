package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")

	status, body := loginUser(t, client, ts.URL, "alice@example.com", "s3cret-pw")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Logged in successfully")
	assert.Contains(t, body, "Logout (Alice)")
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")

	user, err := app.queries.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$argon2id$")
}

func TestRegisterLowercasesEmail(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "Alice@Example.COM", "s3cret-pw")

	_, err := app.queries.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmailKeepsSingleRow(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "Alice@example.com", "s3cret-pw")

	status, body := postForm(t, client, ts.URL+RouteRegister, url.Values{
		"name":     {"Imposter"},
		"email":    {"alice@EXAMPLE.com"},
		"password": {"other-pw"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Email already registered.")
	assert.Equal(t, int64(1), countRows(t, app.db, "users"))
}

func TestRegisterBlankFieldRejected(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, body := postForm(t, client, ts.URL+RouteRegister, url.Values{
		"name":     {"   "},
		"email":    {"alice@example.com"},
		"password": {"s3cret-pw"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Please fill all fields")
	assert.Equal(t, int64(0), countRows(t, app.db, "users"))
}

func TestLoginWrongPasswordLeavesNoSession(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")

	status, body := loginUser(t, client, ts.URL, "alice@example.com", "wrong-pw")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Invalid credentials.")

	_, eventsBody := getPage(t, client, ts.URL+RouteEvents)
	assert.NotContains(t, eventsBody, "Logout (")
}

func TestLoginUnknownEmail(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	status, body := loginUser(t, client, ts.URL, "ghost@example.com", "whatever1")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Invalid credentials.")
}

func TestLogoutDestroysSession(t *testing.T) {
	app := newTestApp(t)
	ts, client := newTestServer(t, app)

	registerUser(t, client, ts.URL, "Alice", "alice@example.com", "s3cret-pw")
	loginUser(t, client, ts.URL, "alice@example.com", "s3cret-pw")

	resp, err := noFollow(client).Get(ts.URL + RouteLogout)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteRoot, resp.Header.Get("Location"))

	_, body := getPage(t, client, ts.URL+RouteEvents)
	assert.NotContains(t, body, "Logout (Alice)")
}
