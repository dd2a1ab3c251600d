package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: WarnLevel, Writer: &buf, NoColor: true})

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN  shown") {
		t.Errorf("Expected warn message, got %q", out)
	}
}

func TestFieldsAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: DebugLevel, Writer: &buf, NoColor: true})

	l := base.WithPrefix("loader").WithFields(map[string]interface{}{"plugin": "onemorenight", "a": 1})
	l.Debugf("loaded %d", 3)

	out := buf.String()
	if !strings.Contains(out, "[loader] a=1 plugin=onemorenight loaded 3") {
		t.Errorf("Unexpected output: %q", out)
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "plugin=") {
		t.Errorf("Child fields leaked into parent: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"fatal":   FatalLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
