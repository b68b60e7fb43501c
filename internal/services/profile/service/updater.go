package service

import (
	"context"

	"questhud/internal/services/profile/domain"
)

// Refresh satisfies domain.SessionPort. The first call on a session performs
// the feed fetch and merge; every later call is a no-op that just reports the
// current status. Errors never escape: a dead feed leaves the ledger as it was
func (s *Service) Refresh(ctx context.Context) (domain.Status, error) {
	sess := s.cur.Load()
	sess.once.Do(func() {
		defer sess.fired.Store(true)
		s.update(ctx, sess)
	})
	return s.statusOf(s.cur.Load()), nil
}

func (s *Service) update(ctx context.Context, sess *session) {
	fctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	events, _, unchanged, err := s.feed.UserEvents(fctx, s.cfg.User, s.cfg.PerPage, "")
	if err != nil {
		s.log.Warn().Err(err).Str("user", s.cfg.User).Msg("feed fetch failed, keeping baseline")
		return
	}
	if unchanged || len(events) == 0 {
		s.log.Debug().Str("user", s.cfg.User).Msg("feed empty, nothing to merge")
		return
	}

	// a result that arrives after cancellation or a session teardown is stale
	if ctx.Err() != nil {
		s.log.Debug().Msg("session context cancelled, discarding fetch")
		return
	}
	if s.cur.Load() != sess {
		s.log.Debug().Msg("session torn down during fetch, discarding result")
		return
	}

	before := sess.led.Load()
	after := before.Merge(events, s.now().UTC())
	if after == before {
		s.log.Debug().Int("events", len(events)).Msg("no events newer than watermark")
		return
	}
	sess.led.Store(after)
	s.log.Info().
		Int("events", len(events)).
		Int("commits", after.Counters().Commits-before.Counters().Commits).
		Time("watermark", after.Watermark()).
		Msg("feed merged into session ledger")
}
