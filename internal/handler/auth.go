// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/evreg-go/internal/auth"
	"github.com/olegiv/evreg-go/internal/metrics"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/session"
	"github.com/olegiv/evreg-go/internal/store"
)

// AuthHandler handles user registration, login and logout.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// templateData builds the common template data from the session.
func templateData(r *http.Request, sm *scs.SessionManager, title string, data any) render.TemplateData {
	return render.TemplateData{
		Title:    title,
		Data:     data,
		UserName: sm.GetString(r.Context(), session.KeyUserName),
		IsAdmin:  sm.GetBool(r.Context(), session.KeyIsAdmin),
	}
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	data := templateData(r, h.sessionManager, "Register", nil)
	if err := h.renderer.Render(w, r, "register", data); err != nil {
		logAndInternalError(w, "failed to render register page", "error", err)
	}
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteRegister) {
		return
	}

	form := newRegisterForm(r.FormValue("name"), r.FormValue("email"), r.FormValue("password"))
	if !form.Valid() {
		flashError(w, r, h.renderer, RouteRegister, "Please fill all fields")
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}

	if _, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	}); err != nil {
		if store.IsUniqueViolation(err) {
			flashError(w, r, h.renderer, RouteRegister, "Email already registered.")
			return
		}
		logAndInternalError(w, "failed to create user", "error", err)
		return
	}

	metrics.UserRegistrations.Inc()
	flashSuccess(w, r, h.renderer, RouteLogin, "Registered successfully. Please login.")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := templateData(r, h.sessionManager, "Login", nil)
	if err := h.renderer.Render(w, r, "login", data); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteLogin) {
		return
	}

	form := newLoginForm(r.FormValue("email"), r.FormValue("password"))
	if !form.Valid() {
		flashError(w, r, h.renderer, RouteLogin, "Invalid credentials.")
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), form.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "error", err)
		}
		flashError(w, r, h.renderer, RouteLogin, "Invalid credentials.")
		return
	}

	ok, err := auth.CheckPassword(form.Password, user.PasswordHash)
	if err != nil || !ok {
		if err != nil {
			slog.Error("failed to verify password", "error", err, "user_id", user.ID)
		}
		flashError(w, r, h.renderer, RouteLogin, "Invalid credentials.")
		return
	}

	// Renew the session token on privilege change
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)
	h.sessionManager.Put(r.Context(), session.KeyUserName, user.Name)

	flashSuccess(w, r, h.renderer, RouteEvents, "Logged in successfully.")
}

// Logout destroys the whole session, admin flag included.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "failed to destroy session", "error", err)
		return
	}
	flashAndRedirect(w, r, h.renderer, RouteRoot, "Logged out.", flashTypeInfo)
}
