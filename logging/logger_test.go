package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

func newTestLogger(out *bytes.Buffer, formatter Formatter, minLevel LogLevel) *logger {
	return &logger{
		mu:        &sync.Mutex{},
		out:       out,
		formatter: formatter,
		minLevel:  minLevel,
		exit:      func(int) {},
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, NewTextFormatter(), LogLevelInfo)

	log.Info("server started", Field{Key: "port", Value: 8080})

	line := buf.String()
	if !strings.Contains(line, "[INFO]") {
		t.Errorf("Expected level marker, got %q", line)
	}
	if !strings.Contains(line, "server started") {
		t.Errorf("Expected message, got %q", line)
	}
	if !strings.Contains(line, "port=8080") {
		t.Errorf("Expected field, got %q", line)
	}
}

func TestMinimumLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, NewTextFormatter(), LogLevelWarn)

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("Levels below minimum must be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("Warn should pass the filter, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, NewJSONFormatter(), LogLevelInfo)

	log.Error("query failed", Field{Key: "table", Value: "users"})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if m["level"] != "ERROR" || m["message"] != "query failed" || m["table"] != "users" {
		t.Errorf("Unexpected JSON payload: %v", m)
	}
}

func TestWithFieldsAndCategory(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, NewTextFormatter(), LogLevelInfo)

	derived := base.WithCategory("di").WithFields(Field{Key: "module", Value: "web"})
	derived.Info("configured")

	line := buf.String()
	if !strings.Contains(line, "(di)") {
		t.Errorf("Expected category, got %q", line)
	}
	if !strings.Contains(line, "module=web") {
		t.Errorf("Expected inherited field, got %q", line)
	}

	// 派生不影响原记录器
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "module=web") {
		t.Errorf("Base logger must stay unchanged, got %q", buf.String())
	}
}

func TestBuilderDefaults(t *testing.T) {
	log := NewLoggingBuilder().Build()
	if log == nil {
		t.Fatal("Build returned nil")
	}
}
