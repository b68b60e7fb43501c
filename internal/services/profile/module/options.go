package module

import (
	"time"

	"questhud/internal/platform/config"
)

// Options holds configuration settings for the profile module
type Options struct {
	User         string
	PerPage      int
	FetchTimeout time.Duration
	Locale       string
	SnapshotPath string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("PROFILE_")
	return Options{
		User:         pf.MustString("GITHUB_USER"),
		PerPage:      pf.MayInt("FEED_PER_PAGE", 100),
		FetchTimeout: pf.MayDuration("FETCH_TIMEOUT", 8*time.Second),
		Locale:       pf.MayString("LOCALE", "en"),
		SnapshotPath: pf.MayString("SNAPSHOT_PATH", ""),
	}
}
