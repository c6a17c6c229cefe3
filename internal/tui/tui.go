package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressMsg reports a pipeline checkpoint to the running display.
type ProgressMsg struct {
	Pct    int
	Status string
}

// DoneMsg stops the display once the pipeline has finished.
type DoneMsg struct{}

const barWidth = 40

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type model struct {
	pct      int
	status   string
	quitting bool
}

// InitialModel returns a progress display at zero percent.
func InitialModel() model {
	return model{status: "Starting..."}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		if msg.Pct > m.pct {
			m.pct = msg.Pct
		}
		m.status = msg.Status
		if m.pct >= 100 {
			m.quitting = true
			return m, tea.Quit
		}

	case DoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	filled := barWidth * m.pct / 100
	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%s\n%s %3d%%\n%s\n",
		titleStyle.Render("Generating articles"),
		bar,
		m.pct,
		statusStyle.Render(m.status),
	)
}

// Run drives the display on the calling goroutine while work runs on its
// own, forwarding checkpoints through send. The context handed to work is
// canceled as soon as the display stops, so quitting early aborts in-flight
// service calls, and Run does not return until work has finished. Anything
// work wrote before returning is therefore safe to read afterwards.
func Run(ctx context.Context, work func(ctx context.Context, send func(ProgressMsg)), opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(InitialModel(), opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		work(ctx, func(msg ProgressMsg) { p.Send(msg) })
		p.Send(DoneMsg{})
	}()

	_, err := p.Run()
	cancel()
	<-done

	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	return nil
}
