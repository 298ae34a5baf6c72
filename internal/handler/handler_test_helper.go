package handler

import (
	"database/sql"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/evreg-go/internal/middleware"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/session"
	"github.com/olegiv/evreg-go/internal/store"
	"github.com/olegiv/evreg-go/internal/testutil"
	"github.com/olegiv/evreg-go/web"
)

// testAdminPassword is the admin password wired into test handlers.
const testAdminPassword = "correct-horse-battery"

// testApp bundles the wired application pieces for handler tests.
type testApp struct {
	db      *sql.DB
	queries *store.Queries
	sm      *scs.SessionManager
	mux     *chi.Mux
}

// newTestApp builds the full router against a temporary database, mirroring
// the route table the server registers.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.TestDB(t)
	sm := session.New(db, true)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	require.NoError(t, err)

	authHandler := NewAuthHandler(db, renderer, sm)
	eventHandler := NewEventHandler(db, renderer, sm)
	feedbackHandler := NewFeedbackHandler(db, renderer, sm)
	chatbotHandler := NewChatbotHandler()
	adminHandler := NewAdminHandler(db, renderer, sm, testAdminPassword)

	mux := chi.NewRouter()
	mux.Use(sm.LoadAndSave)

	mux.Get(RouteRoot, eventHandler.Splash)
	mux.Get(RouteHome, eventHandler.Home)
	mux.Get(RouteRegister, authHandler.RegisterForm)
	mux.Post(RouteRegister, authHandler.Register)
	mux.Get(RouteLogin, authHandler.LoginForm)
	mux.Post(RouteLogin, authHandler.Login)
	mux.Get(RouteLogout, authHandler.Logout)
	mux.Get(RouteEvents, eventHandler.List)
	mux.Post(RouteRegisterEvent, eventHandler.RegisterForEvent)
	mux.Get(RouteFeedback, feedbackHandler.Form)
	mux.Post(RouteFeedback, feedbackHandler.Submit)
	mux.Post(RouteChatbot, chatbotHandler.Reply)
	mux.Get(RouteAdminLogin, adminHandler.LoginForm)
	mux.Post(RouteAdminLogin, adminHandler.Login)
	mux.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sm))
		r.Get(RouteAdminDashboard, adminHandler.Dashboard)
		r.Post(RouteAdminCreateEvent, adminHandler.CreateEvent)
		r.Get(RouteAdminParticipants, adminHandler.Participants)
	})
	mux.Get(RouteAdminLogout, adminHandler.Logout)

	return &testApp{db: db, queries: store.New(db), sm: sm, mux: mux}
}

// newTestServer starts the app behind httptest and returns a cookie-carrying
// client that follows redirects.
func newTestServer(t *testing.T, app *testApp) (*httptest.Server, *http.Client) {
	t.Helper()

	ts := httptest.NewServer(app.mux)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return ts, &http.Client{Jar: jar}
}

// noFollow returns a client sharing the given client's cookie jar that stops
// at the first redirect.
func noFollow(client *http.Client) *http.Client {
	return &http.Client{
		Jar: client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// postForm posts form values and returns the final response body as a string.
func postForm(t *testing.T, client *http.Client, url string, values url.Values) (int, string) {
	t.Helper()

	resp, err := client.PostForm(url, values)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// getPage fetches a URL and returns the final response body as a string.
func getPage(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// registerUser registers a user through the form endpoint.
func registerUser(t *testing.T, client *http.Client, baseURL, name, email, password string) {
	t.Helper()

	status, body := postForm(t, client, baseURL+RouteRegister, url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, strings.Contains(body, "Registered successfully"), "unexpected body: %s", body)
}

// loginUser logs a user in through the form endpoint.
func loginUser(t *testing.T, client *http.Client, baseURL, email, password string) (int, string) {
	t.Helper()

	return postForm(t, client, baseURL+RouteLogin, url.Values{
		"email":    {email},
		"password": {password},
	})
}

// loginAdmin authenticates the admin session through the form endpoint.
func loginAdmin(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	status, body := postForm(t, client, baseURL+RouteAdminLogin, url.Values{
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, strings.Contains(body, "Admin logged in"), "unexpected body: %s", body)
}

// countRows counts rows in a table.
func countRows(t *testing.T, db *sql.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
