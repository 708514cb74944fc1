package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/yt-mp3/internal/config"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.Logger{Level: "warn", Format: "text"})

	logger.Info("hidden message")
	logger.Warn("visible message", "job", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Info should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("Warn should be written, got %q", out)
	}
	if !strings.Contains(out, "abc") {
		t.Errorf("Attributes should be written, got %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.Logger{Level: "debug", Format: "json"})

	logger.Debug("job started", "id", "42")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("Expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"id":"42"`) {
		t.Errorf("Expected id attribute, got %q", out)
	}
}

func TestSetup_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "yt-mp3.log")

	logger, closer, err := Setup(config.Logger{Level: "info", Format: "logfmt", File: path})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	logger.Info("written to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("Log file should contain message, got %q", string(data))
	}
}

func TestSetup_NoFile(t *testing.T) {
	logger, closer, err := Setup(config.Logger{})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected logger")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Closing without file should not fail: %v", err)
	}
}
