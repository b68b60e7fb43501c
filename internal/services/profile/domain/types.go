// Package domain holds the profile service types and ports
package domain

import (
	"time"

	"questhud/internal/core/ledger"
	"questhud/internal/core/progression"
)

// CompletedItem is one finished project counted toward the score
type CompletedItem struct {
	Title      string
	Difficulty progression.Difficulty
}

// Baseline seeds a session before any live merge
type Baseline struct {
	Counters      ledger.Counters
	History       []ledger.Day
	Watermark     time.Time
	MonthlyStreak bool
	Completed     []CompletedItem
}

// Quest is the read model for one completed item
type Quest struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	XP         int    `json:"xp"`
}

// ProgressionState is the read model for the level curve position
type ProgressionState struct {
	Score          int                   `json:"score"`
	Level          int                   `json:"level"`
	XPFloor        int                   `json:"xp_floor"`
	XPCeiling      int                   `json:"xp_ceiling"`
	Progress       float64               `json:"progress"`
	ScoreDisplay   string                `json:"score_display"`
	CeilingDisplay string                `json:"ceiling_display"`
	Breakdown      progression.Breakdown `json:"breakdown"`
}

// CalendarQuery selects the month for a calendar read
type CalendarQuery struct {
	Year  int `json:"year"  validate:"required,min=2000,max=2200"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

// CalendarView is the read model for the month activity grid
type CalendarView struct {
	Month  string         `json:"month"`
	Year   int            `json:"year"`
	Online bool           `json:"online"`
	Total  int            `json:"total"`
	Cells  []*ledger.Cell `json:"cells"`
}

// Status is the read model for the current session
type Status struct {
	SessionID     string    `json:"session_id"`
	StartedAt     time.Time `json:"started_at"`
	Online        bool      `json:"online"`
	Refreshed     bool      `json:"refreshed"`
	MonthlyStreak bool      `json:"monthly_streak"`
	Watermark     time.Time `json:"watermark"`
	Commits       int       `json:"commits"`
	Repositories  int       `json:"repositories"`
	Popularity    int       `json:"popularity"`
}
