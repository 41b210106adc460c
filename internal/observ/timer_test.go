package observ

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "2 files")
	err := tm.Measure("resolve", func() error { return errors.New("boom") })
	if err == nil {
		t.Fatalf("Measure must return fn's error")
	}
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	if report.Phases[0].Note != "2 files" || report.Phases[1].Note != "failed" {
		t.Fatalf("notes = %+v", report.Phases)
	}
	summary := tm.Summary()
	if !strings.Contains(summary, "parse") || !strings.Contains(summary, "total") {
		t.Fatalf("summary:\n%s", summary)
	}
}

func TestNilTimerIsInert(t *testing.T) {
	var tm *Timer
	if idx := tm.Begin("x"); idx != -1 {
		t.Fatalf("Begin on nil = %d", idx)
	}
	tm.End(0, "")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
