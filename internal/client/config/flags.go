package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l int      data-service latency in milliseconds
//	-w int      workflow action latency in milliseconds
//	-t int      session lifetime in minutes
//	-s string   session token secret key
//	-b string   broker id shown in the overview
//	-m string   theme, light or dark
//	-f string   log backend, slog or zerolog
//	-v string   log level
//	-d string   path to a YAML data fixture
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-w", "-t", "-s", "-b", "-m", "-f", "-v", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	dataLatency := fs.Int("l", int(cfg.DataLatency.Milliseconds()), "data service latency (in milliseconds)")
	actionLatency := fs.Int("w", int(cfg.ActionLatency.Milliseconds()), "workflow action latency (in milliseconds)")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session token secret key")
	fs.StringVar(&cfg.BrokerID, "b", cfg.BrokerID, "broker id")
	theme := fs.String("m", string(cfg.Theme), "theme (light|dark)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (slog|zerolog)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.FixturePath, "d", cfg.FixturePath, "path to YAML data fixture")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch models.Theme(*theme) {
	case models.ThemeLight, models.ThemeDark:
	default:
		panic(fmt.Errorf("unknown theme %q", *theme))
	}
	cfg.Theme = models.Theme(*theme)

	// Durations are only replaced when their flag is given, so sub-unit values
	// from the JSON file survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			if *dataLatency < 0 {
				panic(fmt.Errorf("data latency must not be negative, got %d", *dataLatency))
			}
			cfg.DataLatency = time.Duration(*dataLatency) * time.Millisecond
		case "w":
			if *actionLatency < 0 {
				panic(fmt.Errorf("action latency must not be negative, got %d", *actionLatency))
			}
			cfg.ActionLatency = time.Duration(*actionLatency) * time.Millisecond
		case "t":
			if *sessionTTL <= 0 {
				panic(fmt.Errorf("session lifetime must be positive, got %d", *sessionTTL))
			}
			cfg.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
}
