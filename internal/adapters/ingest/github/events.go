package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"questhud/internal/core/ledger"
	perr "questhud/internal/platform/errors"
)

// apiEvent is the slice of the events payload we care about
type apiEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		Size int `json:"size"`
	} `json:"payload"`
}

// UserEvents fetches the most recent public events for a user and maps them
// into ledger events. Returns the events, the response ETag, and whether the
// feed was unchanged since etag
func (c *Client) UserEvents(ctx context.Context, login string, perPage int, etag string) ([]ledger.Event, string, bool, error) {
	if login == "" {
		return nil, "", false, perr.InvalidArgf("github user login required")
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	path := fmt.Sprintf("/users/%s/events?per_page=%d", login, perPage)

	resp, err := c.Do(ctx, path, etag)
	if err != nil {
		return nil, "", false, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	if resp.StatusCode == http.StatusNotModified {
		return nil, resp.Header.Get("ETag"), true, nil
	}

	var raw []apiEvent
	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, "", false, perr.Wrapf(err, perr.ErrorCodeFeedUnavailable, "github read events failed")
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, "", false, perr.Wrapf(err, perr.ErrorCodeFeedUnavailable, "github decode events failed")
	}

	out := make([]ledger.Event, 0, len(raw))
	for _, e := range raw {
		out = append(out, mapEvent(e))
	}
	return out, resp.Header.Get("ETag"), false, nil
}

// mapEvent classifies one feed entry.
// Pushes carry the commit count from payload.size; the feed omits it for
// single commit pushes so zero means one
func mapEvent(e apiEvent) ledger.Event {
	ev := ledger.Event{Timestamp: e.CreatedAt.UTC(), Magnitude: 1}
	switch e.Type {
	case "PushEvent":
		ev.Kind = ledger.KindPush
		if e.Payload.Size > 0 {
			ev.Magnitude = e.Payload.Size
		}
	case "CreateEvent":
		ev.Kind = ledger.KindCreate
	case "PullRequestEvent":
		ev.Kind = ledger.KindPullRequest
	default:
		ev.Kind = ledger.KindOther
	}
	return ev
}
