package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"corund/internal/driver"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("resolve", []string{"lib.cor", "app.cor"}, events).(*progressModel)

	m.Update(eventMsg{File: "lib.cor", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.Update(eventMsg{File: "app.cor", Stage: driver.StageResolve, Status: driver.StatusError})
	m.Update(eventMsg{File: "unknown.cor", Stage: driver.StageParse, Status: driver.StatusWorking})

	if m.items[0].status != "parsing" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.percent(); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("percent = %v, want 0.7", got)
	}

	view := m.View()
	for _, want := range []string{"resolve", "lib.cor", "app.cor", "parsing", "error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatalf("done message must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "done: resolve") {
		t.Fatalf("view after done:\n%s", m.View())
	}
}

func TestListenForEventEndsOnClose(t *testing.T) {
	events := make(chan driver.Event, 1)
	m := NewProgressModel("resolve", []string{"a.cor"}, events).(*progressModel)
	events <- driver.Event{File: "a.cor", Stage: driver.StageLoad, Status: driver.StatusQueued}
	close(events)

	if msg, ok := m.listenForEvent()().(eventMsg); !ok || msg.File != "a.cor" {
		t.Fatalf("first message = %#v", msg)
	}
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatalf("closed channel must yield doneMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short value changed: %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("zero width must keep the value: %q", got)
	}
	got := truncate("a/very/long/path.cor", 10)
	if !strings.HasSuffix(got, "...") || runewidth.StringWidth(got) > 10 {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abcdef", 3); runewidth.StringWidth(got) > 3 || strings.Contains(got, ".") {
		t.Fatalf("narrow truncate = %q", got)
	}
}
