// Package web wires configuration, logging, the blog data layer and the
// HTTP server into the web process.
package web

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
	"github.com/louisbranch/beyondui/internal/blog/apiclient"
	"github.com/louisbranch/beyondui/internal/blog/revalidate"
	entrypoint "github.com/louisbranch/beyondui/internal/platform/cmd"
	"github.com/louisbranch/beyondui/internal/platform/config"
	"github.com/louisbranch/beyondui/internal/platform/logging"
	"github.com/louisbranch/beyondui/internal/querycache"
	"github.com/louisbranch/beyondui/internal/services/web"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// DefaultBlogAPIBaseURL is the hosted post source.
const DefaultBlogAPIBaseURL = "https://688daee0a459d5566b12e6ed.mockapi.io/api/v1"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr           string        `env:"BEYONDUI_WEB_HTTP_ADDR" envDefault:"localhost:8080" validate:"required,hostname_port"`
	BlogAPIBaseURL     string        `env:"BEYONDUI_BLOG_API_BASE_URL" envDefault:"https://688daee0a459d5566b12e6ed.mockapi.io/api/v1" validate:"required,url"`
	BlogAPITimeout     time.Duration `env:"BEYONDUI_BLOG_API_TIMEOUT" envDefault:"0s" validate:"gte=0"`
	SiteURL            string        `env:"BEYONDUI_SITE_URL" envDefault:"https://oronium-assigment.vercel.app" validate:"omitempty,url"`
	CacheStaleAfter    time.Duration `env:"BEYONDUI_CACHE_STALE_AFTER" envDefault:"5m" validate:"gte=0"`
	RevalidateInterval time.Duration `env:"BEYONDUI_REVALIDATE_INTERVAL" envDefault:"60s" validate:"gte=0"`
	LogLevel           string        `env:"BEYONDUI_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	Environment        string        `env:"BEYONDUI_ENV" envDefault:"development"`
	SentryDSN          string        `env:"BEYONDUI_SENTRY_DSN" validate:"omitempty,url"`
	Release            string        `env:"BEYONDUI_RELEASE"`
}

// ParseConfig loads env defaults, overlays flags and validates the result.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BlogAPIBaseURL, "blog-api-url", cfg.BlogAPIBaseURL, "Blog API base URL")
	fs.DurationVar(&cfg.BlogAPITimeout, "blog-api-timeout", cfg.BlogAPITimeout, "Per-request blog API timeout (0 disables)")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site origin for canonical URLs")
	fs.DurationVar(&cfg.CacheStaleAfter, "cache-stale-after", cfg.CacheStaleAfter, "How long cached posts stay fresh")
	fs.DurationVar(&cfg.RevalidateInterval, "revalidate-interval", cfg.RevalidateInterval, "Background post list refresh interval (0 disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and the post revalidation job and blocks until
// ctx ends or either fails.
func Run(ctx context.Context, cfg Config) error {
	logger, flush, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		SentryDSN:   cfg.SentryDSN,
		Release:     cfg.Release,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer flush()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	client, err := apiclient.New(cfg.BlogAPIBaseURL,
		apiclient.WithTimeout(cfg.BlogAPITimeout),
		apiclient.WithTracerProvider(otel.GetTracerProvider()),
	)
	if err != nil {
		return fmt.Errorf("init blog api client: %w", err)
	}
	posts := blog.NewService(client, querycache.New(querycache.WithStaleAfter(cfg.CacheStaleAfter)))

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr: cfg.HTTPAddr,
		SiteURL:  cfg.SiteURL,
		Posts:    posts,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(gctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return revalidate.New(posts, cfg.RevalidateInterval, logger).Run(gctx)
	})
	return g.Wait()
}
