package module

import (
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/config"
)

// Options holds configuration settings for the jurisdiction module
type Options struct {
	// Source selects the provider: "live" or "snapshot"
	Source string

	// Snapshot provider
	SnapshotDir string

	// Live provider
	BaseURL  string
	Token    string
	PageSize int
	Timeout  time.Duration

	// Cache and resolver knobs
	TTL               time.Duration
	MaxPartialMatches int
}

// FromConfig reads configuration settings from the config.Conf (COURTS_*)
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("COURTS_")
	return Options{
		Source:            cf.MayEnum("SOURCE", "live", "live", "snapshot"),
		SnapshotDir:       cf.MayString("SNAPSHOT_DIR", "./snapshots"),
		BaseURL:           cf.MayString("BASE_URL", ""),
		Token:             cf.MayString("API_TOKEN", ""),
		PageSize:          cf.MayInt("PAGE_SIZE", 100),
		Timeout:           cf.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		TTL:               cf.MayDuration("CACHE_TTL", 0),
		MaxPartialMatches: cf.MayInt("MAX_PARTIAL", 0),
	}
}
