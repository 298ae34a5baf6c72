// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/evreg-go/internal/model"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/session"
	"github.com/olegiv/evreg-go/internal/store"
)

// AdminHandler handles the shared-password admin area.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	adminPassword  string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, adminPassword string) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		adminPassword:  adminPassword,
	}
}

// LoginForm renders the admin login page.
func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := templateData(r, h.sessionManager, "Admin Login", nil)
	if err := h.renderer.Render(w, r, "admin_login", data); err != nil {
		logAndInternalError(w, "failed to render admin login page", "error", err)
	}
}

// Login handles the admin login form submission.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminLogin) {
		return
	}

	pwd := r.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pwd), []byte(h.adminPassword)) != 1 {
		flashError(w, r, h.renderer, RouteAdminLogin, "Wrong admin password")
		return
	}

	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyIsAdmin, true)

	flashSuccess(w, r, h.renderer, RouteAdminDashboard, "Admin logged in")
}

// dashboardData is the admin dashboard view model.
type dashboardData struct {
	Events   []model.Event
	Feedback []model.Feedback
}

// Dashboard renders the admin dashboard with all events and feedback.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	feedback, err := h.queries.ListFeedback(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list feedback", "error", err)
		return
	}

	data := templateData(r, h.sessionManager, "Admin Dashboard", dashboardData{
		Events:   events,
		Feedback: feedback,
	})
	if err := h.renderer.Render(w, r, "admin_dashboard", data); err != nil {
		logAndInternalError(w, "failed to render admin dashboard", "error", err)
	}
}

// CreateEvent inserts a new event from the dashboard form. Values are stored
// as posted; an empty title is accepted.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminDashboard) {
		return
	}

	if _, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		Title:       r.FormValue("title"),
		Description: nullString(r.FormValue("description")),
		Date:        nullString(r.FormValue("date")),
	}); err != nil {
		logAndInternalError(w, "failed to create event", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminDashboard, "Event created")
}

// participantsData is the admin participants view model.
type participantsData struct {
	Event        model.Event
	Participants []model.Participant
	Count        int64
}

// Participants renders the participant list for one event. Sign-ups against
// a deleted or never-existing event id are still shown.
func (h *AdminHandler) Participants(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminDashboard, "Invalid event.")
		return
	}

	event, err := h.queries.GetEventByID(r.Context(), eventID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logAndInternalError(w, "failed to get event", "error", err, "event_id", eventID)
		return
	}

	participants, err := h.queries.ListParticipantsByEvent(r.Context(), eventID)
	if err != nil {
		logAndInternalError(w, "failed to list participants", "error", err, "event_id", eventID)
		return
	}

	count, err := h.queries.CountParticipantsByEvent(r.Context(), eventID)
	if err != nil {
		logAndInternalError(w, "failed to count participants", "error", err, "event_id", eventID)
		return
	}

	data := templateData(r, h.sessionManager, "Participants", participantsData{
		Event:        event,
		Participants: participants,
		Count:        count,
	})
	if err := h.renderer.Render(w, r, "admin_participants", data); err != nil {
		logAndInternalError(w, "failed to render participants page", "error", err)
	}
}

// Logout removes only the admin flag. A regular user session stays logged in.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionManager.Remove(r.Context(), session.KeyIsAdmin)
	flashAndRedirect(w, r, h.renderer, RouteRoot, "Admin logged out", flashTypeInfo)
}

// nullString wraps a form value as a nullable column value. The empty string
// maps to NULL, matching how absent optional fields are stored.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
