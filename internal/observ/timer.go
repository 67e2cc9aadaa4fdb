// Package observ collects wall-clock timings of pipeline phases.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration and outcome of one pipeline phase.
type Phase struct {
	Name   string
	Dur    time.Duration
	Failed bool
}

// Timer accumulates phases in the order they finished.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Record appends a finished phase.
func (t *Timer) Record(name string, dur time.Duration, failed bool) {
	t.phases = append(t.phases, Phase{Name: name, Dur: dur, Failed: failed})
}

// Len returns the number of recorded phases.
func (t *Timer) Len() int { return len(t.phases) }

// Summary returns a human-readable table of all recorded phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-10s %9.3f ms", p.Name, p.DurationMS)
		if p.Failed {
			sb.WriteString("  // failed")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %9.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Failed     bool    `json:"failed,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Failed:     phase.Failed,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
