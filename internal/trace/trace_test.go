package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug", "DEBUG"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != strings.ToLower(s) {
			t.Errorf("ParseLevel(%q) = %v", s, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindError, ScopeToken, true},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelPhase, KindSpanBegin, ScopePass, true},
		{LevelPhase, KindPoint, ScopeFile, false},
		{LevelDetail, KindPoint, ScopeFile, true},
		{LevelDetail, KindPoint, ScopeToken, false},
		{LevelDebug, KindPoint, ScopeToken, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v, %v) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "lex", 0)
	Point(tr, ScopeToken, "token", "filtered out", span.ID())
	Error(tr, ScopeToken, "lex-error", "LEX1002", span.ID())
	span.WithExtra("tokens", "3").End("ok")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 events, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "\u2192 lex") {
		t.Errorf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "! lex-error (LEX1002)") {
		t.Errorf("error line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "\u2190 lex (ok) {dur=") || !strings.Contains(lines[2], "tokens=3}") {
		t.Errorf("end line = %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeToken, "token", `Identifier "x"`, 0)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["name"] != "token" || ev["scope"] != "token" || ev["kind"] != "point" {
		t.Fatalf("unexpected event %v", ev)
	}
	if ev["seq"].(float64) != 1 {
		t.Fatalf("seq = %v, want 1", ev["seq"])
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatalf("LevelOff tracer must be disabled")
	}
	span := Begin(tr, ScopePass, "lex", 0)
	if span.End("") != 0 {
		t.Fatalf("nop span must report zero duration")
	}
}

func TestNewDoesNotCloseCallerWriter(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer not propagated")
	}
	if ParentID(ctx) != 0 {
		t.Fatalf("fresh context has parent %d", ParentID(ctx))
	}

	outerCtx, outer := StartSpan(ctx, ScopeDriver, "outer")
	innerCtx, inner := StartSpan(outerCtx, ScopePass, "inner")
	if ParentID(outerCtx) != outer.ID() || ParentID(innerCtx) != inner.ID() {
		t.Fatalf("parents %d/%d, want %d/%d", ParentID(outerCtx), ParentID(innerCtx), outer.ID(), inner.ID())
	}
	if ParentID(ctx) != 0 {
		t.Fatalf("StartSpan must not mutate the caller's context")
	}
}

func TestStartSpanNestsEvents(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelPhase, FormatNDJSON))
	ctx, outer := StartSpan(ctx, ScopeDriver, "outer")
	_, inner := StartSpan(ctx, ScopePass, "inner")
	inner.End("")
	outer.End("")

	type ndjsonEvent struct {
		Kind     string `json:"kind"`
		Name     string `json:"name"`
		SpanID   uint64 `json:"span_id"`
		ParentID uint64 `json:"parent_id"`
	}
	var evs []ndjsonEvent
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var ev ndjsonEvent
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		evs = append(evs, ev)
	}
	if len(evs) != 4 {
		t.Fatalf("got %d events", len(evs))
	}
	if evs[1].Name != "inner" || evs[1].ParentID != outer.ID() || evs[0].ParentID != 0 {
		t.Fatalf("events %+v", evs)
	}
}

func TestStartSpanDroppedByLevel(t *testing.T) {
	ctx := WithTracer(context.Background(), NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText))
	next, span := StartSpan(ctx, ScopeToken, "tok")
	if span.ID() != 0 || next != ctx {
		t.Fatalf("span below level must not become a parent")
	}
}
