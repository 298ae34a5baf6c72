// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// demoEvents are sample rows inserted when seeding is enabled. Dates use the
// ISO form so the lexicographic listing order matches chronology.
var demoEvents = []CreateEventParams{
	{
		Title:       "Orientation Day",
		Description: sql.NullString{String: "Welcome session for new students with campus tours and info booths.", Valid: true},
		Date:        sql.NullString{String: "2026-09-07", Valid: true},
	},
	{
		Title:       "Autumn Hackathon",
		Description: sql.NullString{String: "48 hours of building. Teams of up to four, **prizes** for the top three.", Valid: true},
		Date:        sql.NullString{String: "2026-10-16", Valid: true},
	},
	{
		Title:       "Career Fair",
		Description: sql.NullString{String: "Meet recruiters from local companies. Bring your CV.", Valid: true},
		Date:        sql.NullString{String: "2026-11-03", Valid: true},
	},
}

// Seed inserts demo events when enabled and the events table is empty.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}

	queries := New(db)

	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return fmt.Errorf("counting events: %w", err)
	}
	if count > 0 {
		slog.Info("events already present, skipping seed", "count", count)
		return nil
	}

	for _, params := range demoEvents {
		event, err := queries.CreateEvent(ctx, params)
		if err != nil {
			return fmt.Errorf("seeding event %q: %w", params.Title, err)
		}
		slog.Info("seeded demo event", "id", event.ID, "title", event.Title, "date", event.Date.String)
	}

	return nil
}
