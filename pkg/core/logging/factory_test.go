package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

func TestNewLogger_Defaults(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig("scripter")
	cfg.Output = &buf

	logger, closer, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != sclog.LevelInfo {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	logger.Debug("hidden")
	logger.Info("visible")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "visible") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	cfg := DefaultLoggerConfig("scripter")
	cfg.Level = "error"
	cfg.Verbose = true
	cfg.Output = &bytes.Buffer{}

	logger, _, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger.GetLevel() != sclog.LevelDebug {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scripter.log")
	cfg := DefaultLoggerConfig("scripter")
	cfg.Output = &bytes.Buffer{}
	cfg.File = path
	cfg.Format = "json"

	logger, closer, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), `"message":"to file"`) {
		t.Errorf("log file = %s", data)
	}
}

func TestNewLogger_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"bad level", LoggerConfig{Level: "loud", Format: "text"}},
		{"bad format", LoggerConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewLogger(tt.cfg)
			if !scerr.HasCode(err, scerr.CodeConfigError) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}
