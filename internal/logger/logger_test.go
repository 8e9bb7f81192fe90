package logger

import (
	"testing"

	"github.com/ctrl-app/ctrl-client/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestZapLoggerWritesObjectField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.InfoObj("login succeeded", "login_meta", map[string]any{"token_type": "bearer"})
	log.DebugObj("request completed", "status", 200)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "login succeeded" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
	if _, ok := entries[0].ContextMap()["login_meta"]; !ok {
		t.Fatalf("login_meta field missing: %#v", entries[0].ContextMap())
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	t.Cleanup(func() { S = nil })

	log, err := Init(&config.Config{AppName: "ctrl", LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if log == nil || S == nil {
		t.Fatalf("expected logger to be initialized")
	}
	if !S.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
}

func TestEnsureFallsBackToNop(t *testing.T) {
	if _, ok := Ensure(nil).(NopLogger); !ok {
		t.Fatalf("expected NopLogger for nil input")
	}
}

func TestPackageHelpersWriteThroughS(t *testing.T) {
	t.Cleanup(func() { S = nil })
	core, logs := observer.New(zapcore.DebugLevel)
	S = zap.New(core).Sugar()

	InfoObj("ctrl starting", "config", &config.Config{AppName: "ctrl", Token: "secret"})
	ErrorObj("failed to initialize app", "error", "boom")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "ctrl starting" {
		t.Fatalf("unexpected first entry %+v", entries[0].Entry)
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].Message != "failed to initialize app" {
		t.Fatalf("unexpected second entry %+v", entries[1].Entry)
	}
}

func TestPackageHelpersWithoutInit(t *testing.T) {
	S = nil
	InfoObj("ignored", "k", 1)
	ErrorObj("ignored", "k", 1)
}
