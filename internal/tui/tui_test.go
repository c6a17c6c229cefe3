package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgressUpdates(t *testing.T) {
	var m tea.Model = InitialModel()

	m, _ = m.Update(ProgressMsg{Pct: 30, Status: "Parsing topic analysis..."})
	got := m.(model)
	if got.pct != 30 {
		t.Errorf("pct = %d, want 30", got.pct)
	}
	if got.status != "Parsing topic analysis..." {
		t.Errorf("status = %q", got.status)
	}

	// Progress never moves backwards.
	m, _ = m.Update(ProgressMsg{Pct: 10, Status: "stale"})
	if got := m.(model); got.pct != 30 {
		t.Errorf("pct regressed to %d", got.pct)
	}
}

func TestQuitsAtCompletion(t *testing.T) {
	var m tea.Model = InitialModel()

	m, cmd := m.Update(ProgressMsg{Pct: 100, Status: "done"})
	if cmd == nil {
		t.Fatal("expected quit command at 100%")
	}
	if !m.(model).quitting {
		t.Error("model should be quitting at 100%")
	}
	if m.(model).View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestViewShowsStatus(t *testing.T) {
	var m tea.Model = InitialModel()
	m, _ = m.Update(ProgressMsg{Pct: 40, Status: "Generating blog article..."})

	view := m.(model).View()
	if !strings.Contains(view, "40%") {
		t.Errorf("view missing percent: %q", view)
	}
	if !strings.Contains(view, "Generating blog article...") {
		t.Errorf("view missing status: %q", view)
	}
}

func TestRunWaitsForWork(t *testing.T) {
	var finished bool
	err := Run(context.Background(), func(ctx context.Context, send func(ProgressMsg)) {
		send(ProgressMsg{Pct: 50, Status: "halfway"})
		send(ProgressMsg{Pct: 100, Status: "done"})
		finished = true
	}, tea.WithInput(strings.NewReader("")), tea.WithoutRenderer())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !finished {
		t.Error("Run returned before the work function finished")
	}
}

func TestRunEarlyQuitCancelsWork(t *testing.T) {
	var canceled, finished bool
	err := Run(context.Background(), func(ctx context.Context, send func(ProgressMsg)) {
		send(ProgressMsg{Pct: 10, Status: "starting"})
		select {
		case <-ctx.Done():
			canceled = true
		case <-time.After(5 * time.Second):
		}
		finished = true
	}, tea.WithInput(strings.NewReader("q")), tea.WithoutRenderer())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !canceled {
		t.Error("quitting the display should cancel the work context")
	}
	if !finished {
		t.Error("Run returned before the work function finished")
	}
}
