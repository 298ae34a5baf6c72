// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/evreg-go/internal/metrics"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/session"
	"github.com/olegiv/evreg-go/internal/store"
)

// EventHandler handles the public event pages and participant sign-ups.
type EventHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *EventHandler {
	return &EventHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// Splash renders the opening page.
func (h *EventHandler) Splash(w http.ResponseWriter, r *http.Request) {
	data := templateData(r, h.sessionManager, "Welcome", nil)
	if err := h.renderer.Render(w, r, "splash", data); err != nil {
		logAndInternalError(w, "failed to render splash page", "error", err)
	}
}

// Home renders the event listing landing page.
func (h *EventHandler) Home(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	data := templateData(r, h.sessionManager, "Home", events)
	if err := h.renderer.Render(w, r, "home", data); err != nil {
		logAndInternalError(w, "failed to render home page", "error", err)
	}
}

// List renders the events page with registration forms.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	data := templateData(r, h.sessionManager, "Events", events)
	if err := h.renderer.Render(w, r, "events", data); err != nil {
		logAndInternalError(w, "failed to render events page", "error", err)
	}
}

// RegisterForEvent records a participant sign-up for an event. Logged-in
// users fall back to their session name; guests supply guest fields. The
// event id is recorded as posted, without an existence check.
func (h *EventHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, RouteEvents, "Invalid event.")
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, RouteEvents) {
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = h.sessionManager.GetString(r.Context(), session.KeyUserName)
	}
	if name == "" {
		name = r.FormValue("guest_name")
	}

	email := r.FormValue("email")
	if email == "" {
		email = r.FormValue("guest_email")
	}

	form := participantForm{Name: name, Email: email}
	if !form.Valid() {
		flashError(w, r, h.renderer, RouteEvents, "Please provide name and email to register.")
		return
	}

	if _, err := h.queries.CreateParticipant(r.Context(), store.CreateParticipantParams{
		EventID: eventID,
		Name:    form.Name,
		Email:   form.Email,
	}); err != nil {
		logAndInternalError(w, "failed to create participant", "error", err, "event_id", eventID)
		return
	}

	metrics.EventRegistrations.Inc()
	flashSuccess(w, r, h.renderer, RouteEvents, "Registered for event successfully!")
}
