// Package logging builds the process logger: slog records rendered through
// zerolog, with error-level records also reported to Sentry when a DSN is
// configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// EnvDevelopment selects human-readable console output.
const EnvDevelopment = "development"

const sentryFlushTimeout = 2 * time.Second

// Config selects log level, output format and error reporting.
type Config struct {
	Level       string
	Environment string
	SentryDSN   string
	Release     string
	// Output defaults to stderr.
	Output io.Writer
}

// ParseLevel maps a level name to a slog level. Blank means info.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// New returns the configured logger and a flush func to call before exit.
func New(cfg Config) (*slog.Logger, func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.TrimSpace(cfg.Environment) == "" || cfg.Environment == EnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: cfg.Output != nil}
	}
	zl := zerolog.New(out).With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}
	flush := func() {}

	if dsn := strings.TrimSpace(cfg.SentryDSN); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: cfg.Environment,
			Release:     cfg.Release,
		}); err != nil {
			return nil, nil, fmt.Errorf("init sentry: %w", err)
		}
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		flush = func() { sentry.Flush(sentryFlushTimeout) }
	}

	return slog.New(slogmulti.Fanout(handlers...)), flush, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
