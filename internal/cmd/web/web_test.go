package web

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func clearWebEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BEYONDUI_WEB_HTTP_ADDR",
		"BEYONDUI_BLOG_API_BASE_URL",
		"BEYONDUI_BLOG_API_TIMEOUT",
		"BEYONDUI_SITE_URL",
		"BEYONDUI_CACHE_STALE_AFTER",
		"BEYONDUI_REVALIDATE_INTERVAL",
		"BEYONDUI_LOG_LEVEL",
		"BEYONDUI_SENTRY_DSN",
		"BEYONDUI_OTEL_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearWebEnv(t)

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.BlogAPIBaseURL != DefaultBlogAPIBaseURL {
		t.Fatalf("BlogAPIBaseURL = %q, want %q", cfg.BlogAPIBaseURL, DefaultBlogAPIBaseURL)
	}
	if cfg.BlogAPITimeout != 0 {
		t.Fatalf("BlogAPITimeout = %s, want 0", cfg.BlogAPITimeout)
	}
	if cfg.CacheStaleAfter != 5*time.Minute {
		t.Fatalf("CacheStaleAfter = %s, want 5m", cfg.CacheStaleAfter)
	}
	if cfg.RevalidateInterval != time.Minute {
		t.Fatalf("RevalidateInterval = %s, want 1m", cfg.RevalidateInterval)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	clearWebEnv(t)
	t.Setenv("BEYONDUI_BLOG_API_BASE_URL", "http://127.0.0.1:9999/api")
	t.Setenv("BEYONDUI_REVALIDATE_INTERVAL", "0s")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.BlogAPIBaseURL != "http://127.0.0.1:9999/api" {
		t.Fatalf("BlogAPIBaseURL = %q", cfg.BlogAPIBaseURL)
	}
	if cfg.RevalidateInterval != 0 {
		t.Fatalf("RevalidateInterval = %s, want 0", cfg.RevalidateInterval)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	clearWebEnv(t)
	t.Setenv("BEYONDUI_WEB_HTTP_ADDR", "localhost:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-blog-api-timeout", "3s",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.BlogAPITimeout != 3*time.Second {
		t.Fatalf("BlogAPITimeout = %s, want 3s", cfg.BlogAPITimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "api url", args: []string{"-blog-api-url", "not a url"}, want: "BlogAPIBaseURL"},
		{name: "log level", args: []string{"-log-level", "loud"}, want: "LogLevel"},
		{name: "negative timeout", args: []string{"-blog-api-timeout", "-1s"}, want: "BlogAPITimeout"},
		{name: "listen address", args: []string{"-http-addr", "nowhere"}, want: "HTTPAddr"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearWebEnv(t)
			fs := flag.NewFlagSet("web", flag.ContinueOnError)
			_, err := ParseConfig(fs, tc.args)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestRunRejectsInvalidLogLevel(t *testing.T) {
	clearWebEnv(t)

	err := Run(context.Background(), Config{LogLevel: "loud"})
	if err == nil || !strings.Contains(err.Error(), "init logger") {
		t.Fatalf("err = %v, want init logger error", err)
	}
}

func TestRunRejectsMissingAPIURL(t *testing.T) {
	clearWebEnv(t)

	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Environment: "test"})
	if err == nil || !strings.Contains(err.Error(), "init blog api client") {
		t.Fatalf("err = %v, want blog api client error", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	clearWebEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{
			HTTPAddr:           "127.0.0.1:0",
			BlogAPIBaseURL:     "http://127.0.0.1:1",
			RevalidateInterval: time.Hour,
			Environment:        "test",
		})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not stop")
	}
}
