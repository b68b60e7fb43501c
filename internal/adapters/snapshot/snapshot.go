// Package snapshot loads the baseline profile snapshot from disk.
//
// The snapshot seeds the ledger before any live feed merge. A missing or
// malformed file is never fatal: callers fall back to Zero and start from
// an empty ledger
package snapshot

import (
	"encoding/json"
	"os"
	"time"

	"questhud/internal/core/ledger"
	perr "questhud/internal/platform/errors"
	"questhud/internal/platform/net/http/bind"
)

// CompletedItem is one finished project carried in the baseline
type CompletedItem struct {
	Title      string `json:"title"      validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=trivial moderate hard extreme"`
}

// Baseline is the on-disk snapshot shape
type Baseline struct {
	TotalCommits  int             `json:"total_commits" validate:"min=0"`
	TotalRepos    int             `json:"total_repos"   validate:"min=0"`
	TotalStars    int             `json:"total_stars"   validate:"min=0"`
	MonthlyStreak bool            `json:"monthly_streak"`
	LastUpdated   time.Time       `json:"last_updated"  validate:"required"`
	History       []ledger.Day    `json:"history"       validate:"dive"`
	Completed     []CompletedItem `json:"completed"     validate:"dive"`
}

// Zero returns an empty baseline whose watermark is the session start,
// so a fresh session only ever counts events after it began
func Zero(sessionStart time.Time) Baseline {
	return Baseline{LastUpdated: sessionStart.UTC()}
}

// Load reads and validates the snapshot at path
func Load(path string) (Baseline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Baseline{}, perr.Wrapf(err, perr.ErrorCodeMalformedSnapshot, "snapshot read failed")
	}
	var out Baseline
	if err := json.Unmarshal(b, &out); err != nil {
		return Baseline{}, perr.Wrapf(err, perr.ErrorCodeMalformedSnapshot, "snapshot decode failed")
	}
	if err := bind.Struct(out); err != nil {
		return Baseline{}, perr.Wrapf(err, perr.ErrorCodeMalformedSnapshot, "snapshot validation failed")
	}
	return out, nil
}
