package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleFormatPlain(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Color: "never", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With(String(FieldInvocation, "abc")).Warn("truncating message", Queue("/jobs"), Int("bytes", 8))

	got := buf.String()
	want := "warning: truncating message queue=/jobs bytes=8\n"
	if got != want {
		t.Fatalf("console line = %q, want %q", got, want)
	}
}

func TestConsoleFormatQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Color: "never", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Error("open failed", String("arg", "a b"), String("empty", ""))

	got := buf.String()
	if !strings.HasPrefix(got, "error: open failed ") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `arg="a b"`) || !strings.Contains(got, `empty=""`) {
		t.Fatalf("values not quoted: %q", got)
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Color: "never", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Debug("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
}

func TestConsoleDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Color: "never", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("queue exists")
	if !strings.Contains(buf.String(), "[logger_test.go:") {
		t.Fatalf("expected source location, got %q", buf.String())
	}
}

func TestConsoleColorAlways(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Color: "always", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Error("boom")
	if !strings.HasPrefix(buf.String(), ansiRed+"error"+ansiReset+": boom") {
		t.Fatalf("expected colored label, got %q", buf.String())
	}
}

func TestConsoleGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Color: "never", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.WithGroup("attr").Info("set", Int64("depth", 10))
	if !strings.Contains(buf.String(), "attr.depth=10") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestJSONFormatKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With(String(FieldInvocation, "abc")).Warn("skipping unrecognized argument", String(FieldArg, "-x"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{
		"level":         "warn",
		"msg":           "skipping unrecognized argument",
		FieldArg:        "-x",
		FieldInvocation: "abc",
	} {
		if record[key] != want {
			t.Errorf("%s = %v, want %q", key, record[key], want)
		}
	}
	if _, ok := record["ts"]; !ok {
		t.Error("expected ts key")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestUseColorRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if useColor("auto", &bytes.Buffer{}) {
		t.Fatal("expected no color")
	}
	if !useColor("always", &bytes.Buffer{}) {
		t.Fatal("always must force color")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("nop logger must not be enabled")
	}
	logger.Error("ignored", Queue("/q"))
}
