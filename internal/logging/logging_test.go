package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", "warn")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", "loud")

	l.Debug("debug")
	l.Info("info")

	if strings.Contains(buf.String(), "debug") || !strings.Contains(buf.String(), "info") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "omega.log")

	l, closer, err := OpenFile(path, "omega", "info")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	l.Info("run saved", "score", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run saved") {
		t.Errorf("log file content = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard().Error("nothing", "err", "ignored")
}
