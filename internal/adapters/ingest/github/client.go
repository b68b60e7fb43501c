// Package github provides a resilient GitHub REST v3 client used as the
// live activity feed for questhud
package github

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	perr "questhud/internal/platform/errors"
	"questhud/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "questhud-feed"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens from config
	// Empty means tokenless which is very low quota
	TokensCSV string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal GitHub REST client with token rotation and ETag support
type Client struct {
	http   *http.Client
	opts   Options
	tokens []string
	cur    atomic.Int32
	log    logger.Logger
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	var toks []string
	for _, t := range strings.Split(o.TokensCSV, ",") {
		if t = strings.TrimSpace(t); t != "" {
			toks = append(toks, t)
		}
	}
	return &Client{
		http:   &http.Client{Timeout: o.Timeout},
		opts:   o,
		tokens: toks,
		log:    *logger.Named("github"),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// rotate returns the next token in a round robin rotation
func (c *Client) rotate() string {
	if len(c.tokens) == 0 {
		return ""
	}
	n := int(c.cur.Add(1))
	return c.tokens[n%len(c.tokens)]
}

// Do issues a GET with auth headers, retries, and rate limit handling.
// etagIn is optional and adds If-None-Match for conditional requests
func (c *Client) Do(ctx context.Context, path string, etagIn string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/vnd.github+json")
		if etagIn != "" {
			req.Header.Set("If-None-Match", etagIn)
		}
		if tok := c.rotate(); tok != "" {
			req.Header.Set("Authorization", "token "+tok)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeFeedUnavailable, "github do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusNotModified:
			return resp, nil
		case http.StatusTooManyRequests, http.StatusForbidden:
			// Respect Retry-After and X-RateLimit-Reset when present
			wait := computeWait(rem, reset, retryAfter, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Msg("github rate limited backing off")
			c.sleep(wait)
			attempts++
			continue
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeFeedUnavailable, "github transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transient error retrying")
			c.sleep(back)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then give up
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(
				perr.ErrorCodeFeedUnavailable,
				"github unexpected status %d body %s", resp.StatusCode, string(body),
			)
		}
	}
}

// backoff is simple exponential with a cap
func (c *Client) backoff(attempt int) time.Duration {
	ms := int64(c.opts.RetryBase / time.Millisecond)
	ms = ms << uint(attempt)
	if lid := int64(30 * time.Second / time.Millisecond); ms > lid {
		ms = lid
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
