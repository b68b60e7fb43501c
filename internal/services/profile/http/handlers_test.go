package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"questhud/internal/core/ledger"
	"questhud/internal/core/progression"
	phttp "questhud/internal/platform/net/http"
	"questhud/internal/services/profile/domain"
	profilesvc "questhud/internal/services/profile/service"
)

// staticFeed serves a fixed batch of events
type staticFeed struct {
	events []ledger.Event
}

func (f *staticFeed) UserEvents(_ context.Context, _ string, _ int, _ string) ([]ledger.Event, string, bool, error) {
	return f.events, "", false, nil
}

func testServer(t *testing.T, feed domain.FeedPort) *httptest.Server {
	t.Helper()
	svc := profilesvc.New(profilesvc.Config{User: "octocat"}, feed, domain.Baseline{
		Counters:  ledger.Counters{Commits: 100, Repositories: 5, Popularity: 10},
		History:   []ledger.Day{{Date: time.Now().UTC().Format(ledger.DateLayout), Count: 2}},
		Watermark: time.Now().UTC().Add(-24 * time.Hour),
		Completed: []domain.CompletedItem{{Title: "questhud", Difficulty: progression.DifficultyHard}},
	})

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), svc, svc)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status != "OK" {
		t.Fatalf("envelope status = %q", env.Status)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestGetProgression(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Get(srv.URL + "/progression")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got domain.ProgressionState
	decodeData(t, resp, &got)

	if got.Score != 37 || got.Level != 0 {
		t.Fatalf("progression = %+v", got)
	}
	if got.ScoreDisplay != "37 XP" {
		t.Fatalf("score display = %q", got.ScoreDisplay)
	}
}

func TestGetCalendar(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Get(srv.URL + "/calendar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got domain.CalendarView
	decodeData(t, resp, &got)

	if len(got.Cells) != ledger.GridCells {
		t.Fatalf("cells = %d, want %d", len(got.Cells), ledger.GridCells)
	}
	if got.Total != 2 || !got.Online {
		t.Fatalf("calendar = total %d online %v", got.Total, got.Online)
	}
}

func TestPostCalendarQuery(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Post(srv.URL+"/calendar", "application/json",
		strings.NewReader(`{"year":2026,"month":2}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	var got domain.CalendarView
	decodeData(t, resp, &got)
	if got.Month != "February" || got.Year != 2026 {
		t.Fatalf("calendar = %s %d", got.Month, got.Year)
	}
	if len(got.Cells) != ledger.GridCells {
		t.Fatalf("cells = %d, want %d", len(got.Cells), ledger.GridCells)
	}
}

func TestPostCalendarQuery_Invalid(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Post(srv.URL+"/calendar", "application/json",
		strings.NewReader(`{"year":2026,"month":13}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 validation failure", resp.StatusCode)
	}
}

func TestGetQuests(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Get(srv.URL + "/quests")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got []domain.Quest
	decodeData(t, resp, &got)

	if len(got) != 1 || got[0].XP != 60 {
		t.Fatalf("quests = %+v", got)
	}
}

func TestPostRefreshThenStatus(t *testing.T) {
	srv := testServer(t, &staticFeed{events: []ledger.Event{
		{Timestamp: time.Now().UTC().Add(-time.Hour), Kind: ledger.KindPush, Magnitude: 3},
	}})

	resp, err := http.Post(srv.URL+"/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	var got domain.Status
	decodeData(t, resp, &got)

	if !got.Refreshed {
		t.Fatalf("refresh did not fire")
	}
	if got.Commits != 103 {
		t.Fatalf("commits = %d, want 103", got.Commits)
	}

	resp, err = http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var status domain.Status
	decodeData(t, resp, &status)
	if status.SessionID != got.SessionID {
		t.Fatalf("status session id changed across calls")
	}
}

func TestPostSessionRebuilds(t *testing.T) {
	srv := testServer(t, &staticFeed{})

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var before domain.Status
	decodeData(t, resp, &before)

	resp, err = http.Post(srv.URL+"/session", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	var after domain.Status
	decodeData(t, resp, &after)

	if after.SessionID == before.SessionID {
		t.Fatalf("rebuild kept the session id")
	}
}
