// Package ledger maintains the day-indexed activity history and the scalar
// counters it must stay consistent with. A Ledger is an immutable snapshot:
// Merge computes a new Ledger from the old one plus events, so concurrent
// readers only ever observe a pre- or post-merge state, never a partial one
package ledger

import (
	"sort"
	"time"
)

// DateLayout is the canonical day key, always derived in UTC to match the
// feed's own timestamp convention
const DateLayout = "2006-01-02"

// Day is one calendar day of contribution activity
type Day struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Count int    `json:"count" validate:"min=0"`
}

// Kind discriminates feed events; only push events affect the ledger
type Kind uint8

const (
	// KindOther is feed noise: watches, forks, comments and the like
	KindOther Kind = iota
	// KindPush is a push-style contribution carrying a commit magnitude
	KindPush
	// KindCreate is a repository or branch creation
	KindCreate
	// KindPullRequest is a pull request open/close
	KindPullRequest
)

// Event is a single timestamped feed entry
type Event struct {
	Timestamp time.Time
	Kind      Kind
	Magnitude int
}

// Ledger holds the day-keyed history, the scalar counters, and the merge
// watermark. Zero value is usable but callers normally go through New
type Ledger struct {
	counters  Counters
	history   map[string]int
	watermark time.Time
}

// Counters are the scalar activity counters the score is computed from
type Counters struct {
	Commits      int
	Repositories int
	Popularity   int
}

// New builds a Ledger snapshot from baseline counters, history days, and the
// initial watermark. Days with negative counts are dropped; duplicate dates
// accumulate so the uniqueness invariant holds from the start
func New(c Counters, days []Day, watermark time.Time) *Ledger {
	h := make(map[string]int, len(days))
	for _, d := range days {
		if d.Count < 0 {
			continue
		}
		h[d.Date] += d.Count
	}
	return &Ledger{counters: c, history: h, watermark: watermark}
}

// Counters returns the scalar counters
func (l *Ledger) Counters() Counters { return l.counters }

// Watermark returns the timestamp boundary below which feed events are
// considered already incorporated
func (l *Ledger) Watermark() time.Time { return l.watermark }

// CountOn returns the contribution count recorded for a "2006-01-02" date,
// zero when absent
func (l *Ledger) CountOn(date string) int { return l.history[date] }

// Len returns the number of recorded days
func (l *Ledger) Len() int { return len(l.history) }

// Days returns the history as a date-sorted slice
func (l *Ledger) Days() []Day {
	out := make([]Day, 0, len(l.history))
	for date, count := range l.history {
		out = append(out, Day{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Merge folds feed events into a new Ledger snapshot.
//
// An event applies only when it is a push event, carries a positive magnitude
// (counts are additive, never subtracted), and is strictly newer than the
// watermark. Applied magnitudes land on the event's UTC calendar day and on
// the commits counter, keeping history and counters two views of the same
// stream.
//
// When at least one event applied the watermark advances to now, the merge
// wall-clock time, not the max event timestamp: a later page delivering
// slightly out-of-order events must not re-derive a too-early watermark that
// would replay them. When nothing applied the receiver is returned unchanged,
// watermark included, so a transient empty fetch cannot masquerade as
// "already up to date". Replaying an applied batch is therefore a no-op
func (l *Ledger) Merge(events []Event, now time.Time) *Ledger {
	applied := 0
	var history map[string]int

	for _, e := range events {
		if e.Kind != KindPush || e.Magnitude <= 0 {
			continue
		}
		if !e.Timestamp.After(l.watermark) {
			continue
		}
		if history == nil {
			history = make(map[string]int, len(l.history)+4)
			for k, v := range l.history {
				history[k] = v
			}
		}
		history[e.Timestamp.UTC().Format(DateLayout)] += e.Magnitude
		applied += e.Magnitude
	}

	if applied == 0 {
		return l
	}

	next := *l
	next.history = history
	next.counters.Commits += applied
	next.watermark = now
	return &next
}
