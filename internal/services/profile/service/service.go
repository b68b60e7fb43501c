// Package service implements the profile session, read models, and the one
// shot feed updater
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"questhud/internal/core/ledger"
	"questhud/internal/core/progression"
	"questhud/internal/platform/logger"
	"questhud/internal/services/profile/domain"
)

const (
	defaultPerPage      = 100
	defaultFetchTimeout = 8 * time.Second
	defaultLocale       = "en"
)

// Config tunes the profile service
type Config struct {
	// User is the GitHub login whose feed drives the session
	User string
	// PerPage is the feed page size for the single session fetch
	PerPage int
	// FetchTimeout bounds the updater's feed call
	FetchTimeout time.Duration
	// Locale selects number formatting for display strings
	Locale string
}

// Service owns one live session at a time. Reads are lock free against an
// immutable ledger snapshot; the updater swaps in a new snapshot at most once
// per session
type Service struct {
	cfg       Config
	feed      domain.FeedPort
	base      domain.Baseline
	completed []progression.Difficulty
	printer   *message.Printer
	log       logger.Logger
	now       func() time.Time

	cur atomic.Pointer[session]
}

// session is one updater lifetime: a fresh id, a start instant, and a ledger
// pointer only the once-guarded updater replaces
type session struct {
	id    uuid.UUID
	start time.Time
	once  sync.Once
	fired atomic.Bool
	led   atomic.Pointer[ledger.Ledger]
}

// New constructs the Service and opens the first session from the baseline
func New(cfg Config, feed domain.FeedPort, base domain.Baseline) *Service {
	if cfg.PerPage <= 0 || cfg.PerPage > 100 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.Locale == "" {
		cfg.Locale = defaultLocale
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.English
	}

	completed := make([]progression.Difficulty, 0, len(base.Completed))
	for _, item := range base.Completed {
		completed = append(completed, item.Difficulty)
	}

	s := &Service{
		cfg:       cfg,
		feed:      feed,
		base:      base,
		completed: completed,
		printer:   message.NewPrinter(tag),
		log:       *logger.Named("profile"),
		now:       time.Now,
	}
	s.cur.Store(s.newSession())
	return s
}

func (s *Service) newSession() *session {
	start := s.now().UTC()
	wm := s.base.Watermark
	if wm.IsZero() {
		wm = start
	}
	sess := &session{id: uuid.New(), start: start}
	sess.led.Store(ledger.New(s.base.Counters, s.base.History, wm))
	return sess
}

// Rebuild satisfies domain.SessionPort
func (s *Service) Rebuild(ctx context.Context) (domain.Status, error) {
	sess := s.newSession()
	s.cur.Store(sess)
	s.log.Info().Str("session_id", sess.id.String()).Msg("profile session rebuilt")
	return s.statusOf(sess), nil
}

// Progression satisfies domain.ReaderPort
func (s *Service) Progression(ctx context.Context) (domain.ProgressionState, error) {
	led := s.cur.Load().led.Load()
	c := counters(led)
	score := progression.Aggregate(c, s.completed)
	level := progression.LevelForScore(score)
	ceiling := progression.XPCeiling(level)

	return domain.ProgressionState{
		Score:          score,
		Level:          level,
		XPFloor:        progression.XPFloor(level),
		XPCeiling:      ceiling,
		Progress:       progression.ProgressFraction(score),
		ScoreDisplay:   s.printer.Sprintf("%d XP", score),
		CeilingDisplay: s.printer.Sprintf("%d XP", ceiling),
		Breakdown:      progression.BreakdownFor(c, s.completed),
	}, nil
}

// Calendar satisfies domain.ReaderPort; it reads the current month
func (s *Service) Calendar(ctx context.Context) (domain.CalendarView, error) {
	return s.calendarFor(s.now().UTC()), nil
}

// CalendarAt satisfies domain.ReaderPort for an explicit month
func (s *Service) CalendarAt(ctx context.Context, q domain.CalendarQuery) (domain.CalendarView, error) {
	ref := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.UTC)
	return s.calendarFor(ref), nil
}

func (s *Service) calendarFor(ref time.Time) domain.CalendarView {
	led := s.cur.Load().led.Load()
	total := led.MonthTotal(ref)

	return domain.CalendarView{
		Month:  ref.Month().String(),
		Year:   ref.Year(),
		Online: led.MonthTotal(s.now().UTC()) > 0 || s.base.MonthlyStreak,
		Total:  total,
		Cells:  led.MonthGrid(ref),
	}
}

// Status satisfies domain.ReaderPort
func (s *Service) Status(ctx context.Context) (domain.Status, error) {
	return s.statusOf(s.cur.Load()), nil
}

// Quests satisfies domain.ReaderPort
func (s *Service) Quests(ctx context.Context) ([]domain.Quest, error) {
	out := make([]domain.Quest, 0, len(s.base.Completed))
	for _, item := range s.base.Completed {
		out = append(out, domain.Quest{
			Title:      item.Title,
			Difficulty: item.Difficulty.String(),
			XP:         item.Difficulty.DisplayXP(),
		})
	}
	return out, nil
}

func (s *Service) statusOf(sess *session) domain.Status {
	led := sess.led.Load()
	c := led.Counters()
	return domain.Status{
		SessionID:     sess.id.String(),
		StartedAt:     sess.start,
		Online:        led.MonthTotal(s.now().UTC()) > 0 || s.base.MonthlyStreak,
		Refreshed:     sess.fired.Load(),
		MonthlyStreak: s.base.MonthlyStreak,
		Watermark:     led.Watermark(),
		Commits:       c.Commits,
		Repositories:  c.Repositories,
		Popularity:    c.Popularity,
	}
}

func counters(l *ledger.Ledger) progression.Counters {
	c := l.Counters()
	return progression.Counters{
		Commits:      c.Commits,
		Repositories: c.Repositories,
		Popularity:   c.Popularity,
	}
}

var (
	_ domain.ReaderPort  = (*Service)(nil)
	_ domain.SessionPort = (*Service)(nil)
)
