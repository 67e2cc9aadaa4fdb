package observ

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.Record("load", 2*time.Millisecond, false)
	tm.Record("lex", 500*time.Microsecond, true)

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "load" || !r.Phases[1].Failed {
		t.Fatalf("report %+v", r)
	}
	if r.TotalMS != 2.5 {
		t.Fatalf("total %v, want 2.5", r.TotalMS)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"failed":true`) || strings.Count(string(data), "failed") != 1 {
		t.Fatalf("json %s", data)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Record("lex", time.Millisecond, true)
	s := tm.Summary()
	for _, want := range []string{"timings:", "lex", "1.000 ms", "// failed", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary %q lacks %q", s, want)
		}
	}
	if NewTimer().Summary() == "" {
		t.Fatal("empty timer still prints a header")
	}
}
