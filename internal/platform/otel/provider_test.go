package otel_test

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/beyondui/internal/platform/otel"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("BEYONDUI_OTEL_ENDPOINT", "")
	t.Setenv("BEYONDUI_OTEL_ENABLED", "")

	settings, err := otel.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.SampleRatio != 1 {
		t.Fatalf("SampleRatio = %v, want 1", settings.SampleRatio)
	}
	if settings.Active() {
		t.Fatal("expected tracing inactive without endpoint")
	}
}

func TestLoadSettingsRejectsRatioOutOfRange(t *testing.T) {
	t.Setenv("BEYONDUI_OTEL_SAMPLE_RATIO", "1.5")

	_, err := otel.LoadSettings()
	if err == nil || !strings.Contains(err.Error(), "SampleRatio") {
		t.Fatalf("err = %v, want SampleRatio validation error", err)
	}
}

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "no endpoint", settings: otel.Settings{}, want: false},
		{name: "endpoint", settings: otel.Settings{Endpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "explicitly enabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "true"}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.settings.Active(); got != tc.want {
				t.Fatalf("Active() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSetupNoopWhenInactive(t *testing.T) {
	t.Parallel()

	shutdown, err := otel.Setup(context.Background(), "beyondui-test", otel.Settings{Endpoint: "http://localhost:4318", Enabled: "false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	shutdown, err := otel.Setup(context.Background(), "beyondui-test", otel.Settings{
		Endpoint:    "http://192.0.2.1:4318",
		SampleRatio: 0.5,
		Release:     "v1.2.3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
