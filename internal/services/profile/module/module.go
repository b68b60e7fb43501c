// Package module wires the profile service into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "questhud/internal/modkit"
	"questhud/internal/modkit/httpkit"

	"questhud/internal/adapters/ingest/github"
	"questhud/internal/adapters/snapshot"
	"questhud/internal/core/ledger"
	"questhud/internal/core/progression"
	str "questhud/internal/platform/strings"
	"questhud/internal/services/profile/domain"
	profilehttp "questhud/internal/services/profile/http"
	profilesvc "questhud/internal/services/profile/service"
)

// Ports exposed by the profile module
type Ports struct {
	Reader  domain.ReaderPort
	Session domain.SessionPort
}

// Module implements the profile module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *profilesvc.Service
}

// New constructs the profile module: feed client, baseline, service, routes
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("profile"),
		modkit.WithPrefix("/profile"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	feed := github.NewClient(feedOptions(deps))
	base := loadBaseline(deps, o.SnapshotPath)

	svc := profilesvc.New(profilesvc.Config{
		User:         o.User,
		PerPage:      o.PerPage,
		FetchTimeout: o.FetchTimeout,
		Locale:       o.Locale,
	}, feed, base)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		ports:  Ports{Reader: svc, Session: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		profilehttp.Register(r, m.svc, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service exposes the concrete service for bootstrap wiring
func (m *Module) Service() *profilesvc.Service { return m.svc }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

func feedOptions(deps modkit.Deps) github.Options {
	gh := deps.Cfg.Prefix("GITHUB_")
	return github.Options{
		BaseURL:    gh.MayString("BASE_URL", ""),
		TokensCSV:  gh.MayString("TOKENS", ""),
		Timeout:    gh.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: gh.MayInt("MAX_RETRIES", 3),
		RetryBase:  gh.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}

// loadBaseline reads the snapshot when configured, falling back to a zeroed
// baseline on any failure
func loadBaseline(deps modkit.Deps, path string) domain.Baseline {
	start := time.Now().UTC()
	if path == "" {
		deps.Log.Info().Msg("no snapshot configured, starting from a zeroed baseline")
		return mapBaseline(snapshot.Zero(start))
	}
	raw, err := snapshot.Load(path)
	if err != nil {
		deps.Log.Warn().Err(err).Str("path", path).Msg("snapshot rejected, starting from a zeroed baseline")
		return mapBaseline(snapshot.Zero(start))
	}
	return mapBaseline(raw)
}

func mapBaseline(raw snapshot.Baseline) domain.Baseline {
	completed := make([]domain.CompletedItem, 0, len(raw.Completed))
	for _, item := range raw.Completed {
		d, ok := progression.ParseDifficulty(item.Difficulty)
		if !ok {
			continue
		}
		completed = append(completed, domain.CompletedItem{Title: item.Title, Difficulty: d})
	}
	return domain.Baseline{
		Counters: ledger.Counters{
			Commits:      raw.TotalCommits,
			Repositories: raw.TotalRepos,
			Popularity:   raw.TotalStars,
		},
		History:       raw.History,
		Watermark:     raw.LastUpdated,
		MonthlyStreak: raw.MonthlyStreak,
		Completed:     completed,
	}
}
