package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CTRL_API_URL", "EXPO_PUBLIC_API_URL", "API_URL",
		"REQUEST_TIMEOUT_SECONDS", "OUTPUT_FORMAT", "LOG_LEVEL", "CTRL_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIURL {
		t.Fatalf("APIBaseURL = %q, want default %q", cfg.APIBaseURL, DefaultAPIURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("OutputFormat = %q", cfg.OutputFormat)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadAPIURLOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("CTRL_API_URL", "https://example.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://example.test" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestLoadExpoAPIURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXPO_PUBLIC_API_URL", "https://expo.example.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://expo.example.test" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}

	t.Setenv("CTRL_API_URL", "https://ctrl.example.test")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://ctrl.example.test" {
		t.Fatalf("CTRL_API_URL should take precedence, got %q", cfg.APIBaseURL)
	}
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func TestLoadRejectsUnknownOutputFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("OUTPUT_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported output format")
	}
}

func TestLoadReadsToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("CTRL_TOKEN", " tok123 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "tok123" {
		t.Fatalf("Token = %q", cfg.Token)
	}
}
