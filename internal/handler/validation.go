// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Validator instances cache
// struct metadata and are safe for concurrent use.
var validate = validator.New()

// registerForm carries the user registration fields. Presence is the only
// requirement: the email format is deliberately not checked, matching the
// permissive sign-up behavior the rest of the app assumes.
type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// newRegisterForm builds a registerForm from raw form values, trimming
// whitespace and lowercasing the email.
func newRegisterForm(name, email, password string) registerForm {
	return registerForm{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: strings.TrimSpace(password),
	}
}

// Valid reports whether all required fields are present.
func (f registerForm) Valid() bool {
	return validate.Struct(f) == nil
}

// loginForm carries the user login fields.
type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func newLoginForm(email, password string) loginForm {
	return loginForm{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: strings.TrimSpace(password),
	}
}

func (f loginForm) Valid() bool {
	return validate.Struct(f) == nil
}

// participantForm carries a resolved participant sign-up.
type participantForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

func (f participantForm) Valid() bool {
	return validate.Struct(f) == nil
}

// feedbackForm carries a feedback submission. Only the message is required.
type feedbackForm struct {
	Name    string
	Email   string
	Message string `validate:"required"`
}

func (f feedbackForm) Valid() bool {
	return validate.Struct(f) == nil
}
