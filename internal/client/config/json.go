package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/flagx"
	"github.com/dmitrijs2005/loandesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "300ms" or as integer nanoseconds. Pointer fields tell an
// absent key from an explicit zero.
type JsonConfig struct {
	DataLatency   *timex.Duration `json:"data_latency"`
	ActionLatency *timex.Duration `json:"action_latency"`
	SessionTTL    *timex.Duration `json:"session_ttl"`
	SecretKey     *string         `json:"secret_key"`
	BrokerID      *string         `json:"broker_id"`
	Theme         *string         `json:"theme"`
	LogFormat     *string         `json:"log_format"`
	LogLevel      *string         `json:"log_level"`
	FixturePath   *string         `json:"fixture_path"`
}

// parseJson overlays Config with values loaded from a JSON file named by -c or
// -config. Keys missing from the file leave the current values alone. Panics
// on read or unmarshal errors.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataLatency != nil {
		cfg.DataLatency = jc.DataLatency.Duration
	}
	if jc.ActionLatency != nil {
		cfg.ActionLatency = jc.ActionLatency.Duration
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.BrokerID != nil {
		cfg.BrokerID = *jc.BrokerID
	}
	if jc.Theme != nil {
		cfg.Theme = models.Theme(*jc.Theme)
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.FixturePath != nil {
		cfg.FixturePath = *jc.FixturePath
	}
}
