// Package logging defines the structured-logging interface used across
// loandesk and its slog and zerolog implementations.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "workflow action", "action", "Approve Loan", "borrower_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatSlog    = "slog"
	FormatZerolog = "zerolog"
)

// New builds a Logger writing to w. format selects the backend ("slog" or
// "zerolog", anything else falls back to slog); level is one of debug, info,
// warn, error.
func New(format, level string, w io.Writer) Logger {
	lvl := strings.ToLower(strings.TrimSpace(level))

	if strings.EqualFold(format, FormatZerolog) {
		zl, err := zerolog.ParseLevel(lvl)
		if err != nil || lvl == "" {
			zl = zerolog.InfoLevel
		}
		return NewZerologLogger(zerolog.New(w).With().Timestamp().Logger().Level(zl))
	}

	return newJSONSlogLogger(w, lvl)
}
