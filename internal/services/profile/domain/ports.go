package domain

import (
	"context"

	"questhud/internal/core/ledger"
)

// FeedPort fetches recent activity events for a user.
// etag enables conditional fetches; unchanged reports a 304
type FeedPort interface {
	UserEvents(ctx context.Context, login string, perPage int, etag string) (events []ledger.Event, etagOut string, unchanged bool, err error)
}

// ReaderPort serves the profile read models
type ReaderPort interface {
	Progression(ctx context.Context) (ProgressionState, error)
	Calendar(ctx context.Context) (CalendarView, error)
	CalendarAt(ctx context.Context, q CalendarQuery) (CalendarView, error)
	Status(ctx context.Context) (Status, error)
	Quests(ctx context.Context) ([]Quest, error)
}

// SessionPort controls the session lifecycle
type SessionPort interface {
	// Rebuild tears down the current session and starts a fresh one from
	// the baseline, re-arming the one shot updater
	Rebuild(ctx context.Context) (Status, error)
	// Refresh fires the session's one shot feed merge; a no-op once fired
	Refresh(ctx context.Context) (Status, error)
}
