// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/evreg-go/internal/metrics"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/store"
)

// FeedbackHandler handles feedback submission.
type FeedbackHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *FeedbackHandler {
	return &FeedbackHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// Form renders the feedback page.
func (h *FeedbackHandler) Form(w http.ResponseWriter, r *http.Request) {
	data := templateData(r, h.sessionManager, "Feedback", nil)
	if err := h.renderer.Render(w, r, "feedback", data); err != nil {
		logAndInternalError(w, "failed to render feedback page", "error", err)
	}
}

// Submit handles the feedback form submission. Name and email are optional,
// the message is not.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteFeedback) {
		return
	}

	form := feedbackForm{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}
	if !form.Valid() {
		flashError(w, r, h.renderer, RouteFeedback, "Please enter feedback message.")
		return
	}

	if _, err := h.queries.CreateFeedback(r.Context(), store.CreateFeedbackParams{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}); err != nil {
		logAndInternalError(w, "failed to create feedback", "error", err)
		return
	}

	metrics.FeedbackSubmissions.Inc()
	flashSuccess(w, r, h.renderer, RouteRoot, "Thank you for your feedback!")
}
