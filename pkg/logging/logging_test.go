package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/mail-designer/pkg/logging"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&buf, &logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON})

		logger.Info("session created", "blocks", 3)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if entry["msg"] != "session created" {
			t.Errorf("msg = %v", entry["msg"])
		}
	})

	t.Run("text filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&buf, &logging.Config{Level: logging.LevelWarn, Format: logging.FormatText})

		logger.Info("hidden")
		logger.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("info message logged at warn level")
		}
		if !strings.Contains(out, "shown") {
			t.Error("warn message missing")
		}
	})
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level   logging.Level
		want    slog.Level
		wantErr bool
	}{
		{logging.LevelDebug, slog.LevelDebug, false},
		{logging.LevelInfo, slog.LevelInfo, false},
		{logging.LevelWarn, slog.LevelWarn, false},
		{logging.LevelError, slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
			if err := tt.level.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOGGING_LEVEL", "debug")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOGGING_LEVEL", Format: "TEST_LOGGING_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}

	bad := &logging.Config{Format: "xml"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() should reject unknown format")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatJSON {
		t.Errorf("Merge() = %+v", cfg)
	}
}
