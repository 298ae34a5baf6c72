package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "evreg-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestCreateAndGetUser(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	created, err := q.CreateUser(ctx, CreateUserParams{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := q.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Ada", byEmail.Name)

	byID, err := q.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	_, err := q.CreateUser(ctx, CreateUserParams{Name: "Ada", Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = q.CreateUser(ctx, CreateUserParams{Name: "Ada Again", Email: "ada@example.com", PasswordHash: "h2"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "duplicate email should be a unique violation, got: %v", err)

	count, err := q.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "users table must gain exactly one row")
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db := newTestDB(t)
	q := New(db)

	_, err := q.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListEventsOrderedByDate(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	// Inserted out of order; the listing sorts by the date string.
	for _, e := range []CreateEventParams{
		{Title: "Later", Date: sql.NullString{String: "2026-11-03", Valid: true}},
		{Title: "Sooner", Date: sql.NullString{String: "2026-09-07", Valid: true}},
		{Title: "Middle", Date: sql.NullString{String: "2026-10-16", Valid: true}},
	} {
		_, err := q.CreateEvent(ctx, e)
		require.NoError(t, err)
	}

	events, err := q.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Sooner", events[0].Title)
	assert.Equal(t, "Middle", events[1].Title)
	assert.Equal(t, "Later", events[2].Title)
}

func TestCreateEventEmptyTitleAllowed(t *testing.T) {
	db := newTestDB(t)
	q := New(db)

	// NOT NULL accepts an empty string; admin event creation relies on that.
	event, err := q.CreateEvent(context.Background(), CreateEventParams{Title: ""})
	require.NoError(t, err)
	assert.Empty(t, event.Title)
}

func TestParticipantsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	event, err := q.CreateEvent(ctx, CreateEventParams{Title: "Hackathon"})
	require.NoError(t, err)

	before, err := q.ListParticipantsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, before)

	first, err := q.CreateParticipant(ctx, CreateParticipantParams{EventID: event.ID, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	second, err := q.CreateParticipant(ctx, CreateParticipantParams{EventID: event.ID, Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	participants, err := q.ListParticipantsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, second.ID, participants[0].ID, "most recent participant comes first")
	assert.Equal(t, first.ID, participants[1].ID)

	count, err := q.CountParticipantsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestParticipantForMissingEventStillInserts(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	// No FOREIGN KEY clause on participants.event_id: an id that never
	// existed is accepted.
	p, err := q.CreateParticipant(ctx, CreateParticipantParams{EventID: 9999, Name: "Ghost", Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(9999), p.EventID)

	participants, err := q.ListParticipantsByEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Len(t, participants, 1)
}

func TestFeedbackNewestFirst(t *testing.T) {
	db := newTestDB(t)
	q := New(db)
	ctx := context.Background()

	first, err := q.CreateFeedback(ctx, CreateFeedbackParams{Message: "first"})
	require.NoError(t, err)
	second, err := q.CreateFeedback(ctx, CreateFeedbackParams{Name: "Ada", Email: "ada@example.com", Message: "second"})
	require.NoError(t, err)

	feedback, err := q.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	assert.Equal(t, second.ID, feedback[0].ID)
	assert.Equal(t, first.ID, feedback[1].ID)
	assert.Empty(t, feedback[1].Name, "name is optional")
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, db, false))
	events, err := New(db).ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events, "seeding disabled must not insert")

	require.NoError(t, Seed(ctx, db, true))
	events, err = New(db).ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, len(demoEvents))

	// Idempotent: a second run must not duplicate.
	require.NoError(t, Seed(ctx, db, true))
	events, err = New(db).ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, len(demoEvents))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
}
