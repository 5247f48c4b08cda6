package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port     int           `env:"BEYONDUI_TEST_PORT" envDefault:"123" validate:"min=1,max=65535"`
	BaseURL  string        `env:"BEYONDUI_TEST_BASE_URL" envDefault:"https://api.example.com" validate:"required,url"`
	Interval time.Duration `env:"BEYONDUI_TEST_INTERVAL" envDefault:"30s" validate:"gte=0"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Interval != 30*time.Second {
		t.Fatalf("expected default interval 30s, got %s", cfg.Interval)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BEYONDUI_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	t.Parallel()

	err := Validate(envTestConfig{Port: 0, BaseURL: "not a url", Interval: -time.Second})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"invalid config:", "Port failed min=1", "BaseURL failed url", "Interval failed gte=0"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestValidateRejectsNonStruct(t *testing.T) {
	t.Parallel()

	if err := Validate("nope"); err == nil || !strings.Contains(err.Error(), "validate config:") {
		t.Fatalf("err = %v, want validate config error", err)
	}
}
