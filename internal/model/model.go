// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain entities persisted by the application:
// User, Event, Participant and Feedback.
package model

import (
	"database/sql"
	"time"
)

// User is a registered visitor who can log in and sign up for events.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Event is a happening that participants can register for.
type Event struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description sql.NullString `json:"description,omitempty"`
	// Date is stored as an opaque sortable string; listings order by it
	// lexicographically, so ISO dates (YYYY-MM-DD) sort chronologically.
	Date sql.NullString `json:"date,omitempty"`
}

// Participant links a person (by name/email) to one event. The event_id is
// not validated against the events table at write time; orphaned references
// are tolerated.
type Participant struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is a visitor-submitted message. Name and email are optional.
type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Log levels written by the logging handler.
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// LogEntry is a persisted application log record (WARN and above).
type LogEntry struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
