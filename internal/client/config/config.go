package config

import "time"

// Config holds runtime settings for the Paygate CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the version prefix.
//   - RequestTimeout: upper bound on any single HTTP request.
//   - PageLimit: page size requested from the listing endpoints.
//   - RefreshDelay: wait before the post-initialization history refresh.
//   - DatabaseDSN: path of the local SQLite file holding the session.
//
// Units: RequestTimeout and RefreshDelay are time.Durations (e.g., 15*time.Second).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	PageLimit      int
	RefreshDelay   time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.PageLimit = 10
	c.RefreshDelay = 3 * time.Second
	c.DatabaseDSN = "paygate.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
