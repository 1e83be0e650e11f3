package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}

	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled() should default to true")
	}
	if got := cfg.GetMaxSizeMB(); got != 50 {
		t.Errorf("GetMaxSizeMB() = %d, want 50", got)
	}
	if got := cfg.GetMaxAgeDays(); got != 7 {
		t.Errorf("GetMaxAgeDays() = %d, want 7", got)
	}
	if got := cfg.GetMaxBackups(); got != 3 {
		t.Errorf("GetMaxBackups() = %d, want 3", got)
	}
}

func TestLoggingConfigExplicitValues(t *testing.T) {
	disabled := false
	cfg := &LoggingConfig{
		FileEnabled: &disabled,
		MaxSizeMB:   10,
		MaxAgeDays:  1,
		MaxBackups:  9,
	}

	if cfg.IsFileEnabled() {
		t.Error("IsFileEnabled() should honor explicit false")
	}
	if cfg.GetMaxSizeMB() != 10 || cfg.GetMaxAgeDays() != 1 || cfg.GetMaxBackups() != 9 {
		t.Error("explicit values should be returned as-is")
	}
}

func TestInitSetsLevel(t *testing.T) {
	Init(false)
	if got := Log.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("Init(false) level = %v, want info", got)
	}

	Init(true)
	if got := Log.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("Init(true) level = %v, want debug", got)
	}
}

func TestInitWithFile(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	if err := InitWithFile(true, logsDir, &LoggingConfig{}); err != nil {
		t.Fatalf("InitWithFile() unexpected error: %v", err)
	}
	t.Cleanup(func() { CloseFileWriter() })

	wantPath := filepath.Join(logsDir, "bluebuild.log")
	if got := GetLogFilePath(); got != wantPath {
		t.Errorf("GetLogFilePath() = %q, want %q", got, wantPath)
	}

	Info().Msg("hello")

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after a write")
	}

	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter() unexpected error: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath() should be empty after close")
	}
}

func TestInitWithFileDisabled(t *testing.T) {
	disabled := false
	logsDir := filepath.Join(t.TempDir(), "logs")

	if err := InitWithFile(false, logsDir, &LoggingConfig{FileEnabled: &disabled}); err != nil {
		t.Fatalf("InitWithFile() unexpected error: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("file logging should be disabled")
	}
	if _, err := os.Stat(logsDir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created when file logging is disabled")
	}
}
