package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger enabled with no level set, want no-op logger")
	}
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{level: "info", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{level: "warn", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{level: "error", enabled: zapcore.ErrorLevel, muted: zapcore.WarnLevel},
		{level: "verbose", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if err := Initialize(tt.level); err != nil {
				t.Fatalf("Initialize(%q) error = %v", tt.level, err)
			}
			core := GetLogger().Core()
			if !core.Enabled(tt.enabled) {
				t.Errorf("level %v disabled, want enabled", tt.enabled)
			}
			if core.Enabled(tt.muted) {
				t.Errorf("level %v enabled, want disabled", tt.muted)
			}
		})
	}
	SetLogger(nil)
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogViewpoint(2, -1.2693, -0.4145, 0.05, 97, 120)
	LogResize(80, 100)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}

	vp := entries[0].ContextMap()
	if entries[0].Message != "Viewpoint selected" {
		t.Errorf("message = %q, want %q", entries[0].Message, "Viewpoint selected")
	}
	if vp["index"] != int64(2) || vp["max_color"] != int64(97) || vp["width"] != int64(120) {
		t.Errorf("viewpoint fields = %v", vp)
	}

	rs := entries[1].ContextMap()
	if entries[1].Level != zapcore.DebugLevel {
		t.Errorf("resize level = %v, want debug", entries[1].Level)
	}
	if rs["old_width"] != int64(80) || rs["new_width"] != int64(100) {
		t.Errorf("resize fields = %v", rs)
	}
}

func TestGetLoggerNeverNil(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() = nil")
	}
}
