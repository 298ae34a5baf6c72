// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/evreg-go/internal/model"
)

// Queries wraps a database handle with typed query methods. Every method
// issues a single auto-committing statement; there are no multi-statement
// transactions in this application.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance for the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// CreateUserParams holds the fields for creating a user.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// CreateUser inserts a new user row. The users.email UNIQUE constraint is the
// duplicate-registration guard; callers detect it with IsUniqueViolation.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.PasswordHash, now,
	)
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           id,
		Name:         arg.Name,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		CreatedAt:    now,
	}, nil
}

// GetUserByEmail returns the user with the given email, or sql.ErrNoRows.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetUserByID returns the user with the given id, or sql.ErrNoRows.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// CountUsers returns the number of user rows.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// CreateEventParams holds the fields for creating an event.
type CreateEventParams struct {
	Title       string
	Description sql.NullString
	Date        sql.NullString
}

// CreateEvent inserts a new event row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO events (title, description, date) VALUES (?, ?, ?)`,
		arg.Title, arg.Description, arg.Date,
	)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	return model.Event{
		ID:          id,
		Title:       arg.Title,
		Description: arg.Description,
		Date:        arg.Date,
	}, nil
}

// GetEventByID returns the event with the given id, or sql.ErrNoRows.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (model.Event, error) {
	var e model.Event
	err := q.db.QueryRowContext(ctx,
		`SELECT id, title, description, date FROM events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date)
	return e, err
}

// ListEvents returns all events ordered ascending by the date string.
// The sort is lexicographic, so only consistently formatted dates (ISO
// YYYY-MM-DD) sort chronologically.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, title, description, date FROM events ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateParticipantParams holds the fields for registering a participant.
type CreateParticipantParams struct {
	EventID int64
	Name    string
	Email   string
}

// CreateParticipant inserts a participant row stamped with the current time.
// The event id is not checked against the events table.
func (q *Queries) CreateParticipant(ctx context.Context, arg CreateParticipantParams) (model.Participant, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO participants (event_id, name, email, created_at) VALUES (?, ?, ?, ?)`,
		arg.EventID, arg.Name, arg.Email, now,
	)
	if err != nil {
		return model.Participant{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Participant{}, err
	}
	return model.Participant{
		ID:        id,
		EventID:   arg.EventID,
		Name:      arg.Name,
		Email:     arg.Email,
		CreatedAt: now,
	}, nil
}

// ListParticipantsByEvent returns the participants of one event, most recent
// first. The id tiebreak keeps ordering deterministic for same-second inserts.
func (q *Queries) ListParticipantsByEvent(ctx context.Context, eventID int64) ([]model.Participant, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, event_id, name, email, created_at FROM participants
		 WHERE event_id = ? ORDER BY created_at DESC, id DESC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Email, &p.CreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// CountParticipantsByEvent returns the number of participants for one event.
func (q *Queries) CountParticipantsByEvent(ctx context.Context, eventID int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE event_id = ?`, eventID).Scan(&n)
	return n, err
}

// CreateFeedbackParams holds the fields for submitting feedback.
type CreateFeedbackParams struct {
	Name    string
	Email   string
	Message string
}

// CreateFeedback inserts a feedback row stamped with the current time.
func (q *Queries) CreateFeedback(ctx context.Context, arg CreateFeedbackParams) (model.Feedback, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO feedback (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Message, now,
	)
	if err != nil {
		return model.Feedback{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Feedback{}, err
	}
	return model.Feedback{
		ID:        id,
		Name:      arg.Name,
		Email:     arg.Email,
		Message:   arg.Message,
		CreatedAt: now,
	}, nil
}

// ListFeedback returns all feedback, most recent first.
func (q *Queries) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM feedback
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []model.Feedback
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

// CountFeedback returns the number of feedback rows.
func (q *Queries) CountFeedback(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&n)
	return n, err
}

// CreateLogParams holds the fields for persisting a log record.
type CreateLogParams struct {
	Level     string
	Message   string
	Path      string
	Metadata  string
	CreatedAt time.Time
}

// CreateLog inserts an application log row.
func (q *Queries) CreateLog(ctx context.Context, arg CreateLogParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO logs (level, message, path, metadata, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Level, arg.Message, arg.Path, arg.Metadata, arg.CreatedAt,
	)
	return err
}
