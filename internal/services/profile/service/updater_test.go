package service

import (
	"context"
	"testing"
	"time"

	"questhud/internal/core/ledger"
	perr "questhud/internal/platform/errors"
)

func feedEvents(ts time.Time) []ledger.Event {
	return []ledger.Event{
		{Timestamp: ts, Kind: ledger.KindPush, Magnitude: 3},
		{Timestamp: ts.Add(time.Minute), Kind: ledger.KindCreate, Magnitude: 1},
	}
}

func TestRefresh_MergesOnce(t *testing.T) {
	feed := &fakeFeed{events: feedEvents(time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC))}
	s := newTestService(feed, testBaseline())

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !got.Refreshed {
		t.Fatalf("status must report refreshed after firing")
	}
	if got.Commits != 103 {
		t.Fatalf("commits = %d, want 103 (baseline 100 + push of 3)", got.Commits)
	}
	if !got.Watermark.Equal(s.now()) {
		t.Fatalf("watermark = %v, want merge time", got.Watermark)
	}

	// second call must not refetch
	again, _ := s.Refresh(context.Background())
	if feed.calls != 1 {
		t.Fatalf("feed called %d times, want 1", feed.calls)
	}
	if again.Commits != 103 {
		t.Fatalf("repeat refresh changed commits to %d", again.Commits)
	}
}

func TestRefresh_FeedFailureAbsorbed(t *testing.T) {
	feed := &fakeFeed{err: perr.FeedUnavailablef("boom")}
	s := newTestService(feed, testBaseline())

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("feed failure must not surface, got %v", err)
	}
	if got.Commits != 100 {
		t.Fatalf("commits = %d, baseline must be untouched", got.Commits)
	}
	if !got.Refreshed {
		t.Fatalf("failed attempt still consumes the one shot")
	}
	if !got.Watermark.Equal(testBaseline().Watermark) {
		t.Fatalf("watermark moved on a failed fetch: %v", got.Watermark)
	}
}

func TestRefresh_StaleEventsBelowWatermark(t *testing.T) {
	// events older than the baseline watermark
	feed := &fakeFeed{events: feedEvents(time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC))}
	s := newTestService(feed, testBaseline())

	got, _ := s.Refresh(context.Background())
	if got.Commits != 100 {
		t.Fatalf("commits = %d, stale events must not apply", got.Commits)
	}
	if !got.Watermark.Equal(testBaseline().Watermark) {
		t.Fatalf("watermark advanced without an applied event")
	}
}

func TestRefresh_CancelledContextDiscardsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := &fakeFeed{events: feedEvents(time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC))}
	feed.hook = cancel // feed answers, but the session went away mid flight
	s := newTestService(feed, testBaseline())

	got, err := s.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got.Commits != 100 {
		t.Fatalf("commits = %d, cancelled fetch must be discarded", got.Commits)
	}
}

func TestRefresh_TeardownDiscardsResult(t *testing.T) {
	feed := &fakeFeed{events: feedEvents(time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC))}
	var s *Service
	feed.hook = func() {
		if _, err := s.Rebuild(context.Background()); err != nil {
			t.Errorf("Rebuild: %v", err)
		}
	}
	s = newTestService(feed, testBaseline())

	got, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got.Commits != 100 {
		t.Fatalf("commits = %d, result for a torn down session must be discarded", got.Commits)
	}
}

func TestRefresh_RearmsAfterRebuild(t *testing.T) {
	feed := &fakeFeed{events: feedEvents(time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC))}
	s := newTestService(feed, testBaseline())

	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, err := s.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if feed.calls != 2 {
		t.Fatalf("feed called %d times, want one fetch per session", feed.calls)
	}
}
