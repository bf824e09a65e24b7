// Package tui provides the interactive live view: a bubbletea program
// driving a manual engine one step per tick. The manual engine exists for
// exactly this shape of caller, where an external event loop owns the
// cadence.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stardust/engine"
	"github.com/san-kum/stardust/internal/metrics"
	"github.com/san-kum/stardust/internal/motion"
	"github.com/san-kum/stardust/internal/render"
	"github.com/san-kum/stardust/internal/scenario"
	"github.com/san-kum/stardust/particle"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a manual engine from tick messages and renders the canvas
// frame plus a stats pane.
type Model struct {
	eng       *engine.Manual[motion.Dot]
	canvas    *render.Canvas
	globals   []particle.Stated
	collector *metrics.Collector

	name      string
	frameRate int
	running   bool
}

// NewModel builds the live view over a configured engine build.
func NewModel(name string, build *scenario.Build, frameRate int) Model {
	// Frames are composed in View; the canvas buffer is enough.
	build.Canvas.Out = io.Discard
	build.Canvas.FrameRate = 0

	return Model{
		eng:       build.Engine.Manual(),
		canvas:    build.Canvas,
		globals:   build.Globals,
		collector: metrics.NewCollector(&metrics.Population{}, &metrics.Spread{}),
		name:      name,
		frameRate: frameRate,
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles input and advances the simulation one step per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			// single-step while paused
			if !m.running {
				m.step()
			}
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.eng.Step()
	for _, g := range m.globals {
		g.Notify(particle.Global)
	}
	m.collector.ObserveScene(*m.eng.Scene())
}

// View renders the frame and stats panes.
func (m Model) View() string {
	m.eng.Draw() // refresh the canvas buffer
	frame := m.canvas.Frame(*m.eng.Scene())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.canvas.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Scene().Len())) + "\n")

	if spread := m.collector.Series()["spread"]; len(spread) > 1 {
		s.WriteString(labelStyle.Render("Spread") +
			graphStyle.Render(render.Sparkline(spread, 30)) + "\n")
	}

	s.WriteString(helpStyle.Render("space: pause   s: step   q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, frame, "  ", s.String())
}

// Run starts the live view for a configured build.
func Run(name string, build *scenario.Build, frameRate int) error {
	if frameRate <= 0 {
		frameRate = 30
	}
	model := NewModel(name, build, frameRate)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
