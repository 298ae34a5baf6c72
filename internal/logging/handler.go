// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that tees WARN and ERROR records
// into the logs table so store-level failures survive process restarts.
package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/olegiv/evreg-go/internal/middleware"
	"github.com/olegiv/evreg-go/internal/model"
	"github.com/olegiv/evreg-go/internal/store"
)

// DBHandler is a slog.Handler that wraps another handler and also writes
// WARN and ERROR level records to the logs table.
type DBHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level
}

// NewDBHandler creates a DBHandler that forwards every record to inner and
// persists records at WARN level and above.
func NewDBHandler(inner slog.Handler, db *sql.DB) *DBHandler {
	return &DBHandler{
		inner:   inner,
		queries: store.New(db),
		level:   slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *DBHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *DBHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.persist(ctx, r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &DBHandler{inner: h.inner.WithAttrs(attrs), queries: h.queries, level: h.level}
}

// WithGroup implements slog.Handler.
func (h *DBHandler) WithGroup(name string) slog.Handler {
	return &DBHandler{inner: h.inner.WithGroup(name), queries: h.queries, level: h.level}
}

// persist writes a record to the logs table. A background context is used so
// the row is written even when the request context is already cancelled.
func (h *DBHandler) persist(ctx context.Context, r slog.Record) {
	_ = h.queries.CreateLog(context.Background(), store.CreateLogParams{
		Level:     levelName(r.Level),
		Message:   r.Message,
		Path:      middleware.GetRequestPath(ctx),
		Metadata:  attrsJSON(r),
		CreatedAt: r.Time,
	})
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.LogLevelError
	case level >= slog.LevelWarn:
		return model.LogLevelWarning
	default:
		return model.LogLevelInfo
	}
}

// attrsJSON collects the record attributes into a flat JSON object.
func attrsJSON(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{")
	first := true

	r.Attrs(func(a slog.Attr) bool {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(`"`)
		sb.WriteString(escapeJSON(a.Key))
		sb.WriteString(`":"`)
		sb.WriteString(escapeJSON(a.Value.String()))
		sb.WriteString(`"`)
		return true
	})

	sb.WriteString("}")
	return sb.String()
}

// escapeJSON escapes special characters in a string for JSON.
func escapeJSON(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
