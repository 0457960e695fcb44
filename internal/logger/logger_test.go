package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			rot := Rotation{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
				Compress:   false,
			}
			if err := InitWithRotation(tt.level, rot, false); err != nil {
				t.Fatalf("init: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fallback.log")
	if err := InitWithRotation("chatty", Rotation{Path: logFile}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Debug("hidden")
	Info("visible")
	Sync()

	content, _ := os.ReadFile(logFile)
	if strings.Contains(string(content), "hidden") {
		t.Error("debug should be filtered at the info fallback level")
	}
	if !strings.Contains(string(content), "visible") {
		t.Error("info should pass at the fallback level")
	}
}

func TestDefaultRotation(t *testing.T) {
	rot := DefaultRotation("/tmp/editor.log")
	if rot.Path != "/tmp/editor.log" {
		t.Errorf("path = %s, want /tmp/editor.log", rot.Path)
	}
	if rot.MaxSizeMB != 20 || rot.MaxBackups != 3 || rot.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation defaults: %+v", rot)
	}
	if !rot.Compress {
		t.Error("compression should default on")
	}
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	Log = nil
	Sugar = nil
	// Reset to the package default nop and make sure helpers don't panic.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("logging before Init panicked: %v", r)
		}
	}()
	if err := InitWithRotation("info", Rotation{}, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Info("no sinks configured")
	Sync()
}
