package config

import (
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/logging"
)

// Config holds runtime settings for the loandesk CLI.
//
// Fields:
//   - DataLatency: simulated delay of every data-service call.
//   - ActionLatency: simulated delay of every workflow action.
//   - SessionTTL: lifetime of the demo session token.
//   - SecretKey: HS256 key for session tokens; empty means a random key per run.
//   - BrokerID: broker shown in the overview panel.
//   - Theme: initial theme, light or dark.
//   - LogFormat, LogLevel: logging backend and threshold.
//   - FixturePath: YAML data set to serve instead of the embedded one.
type Config struct {
	DataLatency   time.Duration
	ActionLatency time.Duration
	SessionTTL    time.Duration
	SecretKey     string
	BrokerID      string
	Theme         models.Theme
	LogFormat     string
	LogLevel      string
	FixturePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataLatency = 300 * time.Millisecond
	c.ActionLatency = time.Second
	c.SessionTTL = 8 * time.Hour
	c.SecretKey = ""
	c.BrokerID = "1"
	c.Theme = models.ThemeLight
	c.LogFormat = logging.FormatSlog
	c.LogLevel = "info"
	c.FixturePath = ""
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
