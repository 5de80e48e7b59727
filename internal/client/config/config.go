package config

import (
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - Endpoint: URL of the user collection, e.g. http://localhost:3000/api/user.
//   - RequestTimeout: per-call timeout; zero relies on the transport default.
//   - LogLevel, LogFormat: logging backend selection.
type Config struct {
	Endpoint       string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      logging.Format
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = common.DefaultEndpoint
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
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
