package viz

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qsweep/internal/sweep"
)

const (
	graphWidth  = 80
	graphHeight = 10
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// PointMsg carries one completed sweep point into the UI.
type PointMsg sweep.Point

// DoneMsg signals the end of the sweep.
type DoneMsg struct{ Err error }

// Model renders a running sweep: completed points arrive over a channel and
// are charted in ratio order. The computation itself runs elsewhere; quitting
// only cancels its context.
type Model struct {
	total   int
	points  []sweep.Point
	latest  sweep.Point
	updates <-chan sweep.Point
	done    <-chan error
	cancel  context.CancelFunc
}

func NewModel(total int, updates <-chan sweep.Point, done <-chan error, cancel context.CancelFunc) Model {
	return Model{
		total:   total,
		points:  make([]sweep.Point, 0, total),
		updates: updates,
		done:    done,
		cancel:  cancel,
	}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-m.updates:
			return PointMsg(p)
		case err := <-m.done:
			return DoneMsg{Err: err}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case PointMsg:
		m.insert(sweep.Point(msg))
		return m, m.wait()

	case DoneMsg:
		// The updates channel is buffered; drain points that finished
		// after the final one we saw but before completion.
		for {
			select {
			case p := <-m.updates:
				m.insert(p)
				continue
			default:
			}
			break
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) insert(p sweep.Point) {
	m.latest = p
	m.points = append(m.points, p)
	sort.Slice(m.points, func(i, j int) bool { return m.points[i].Ratio < m.points[j].Ratio })
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("transmon design sweep"))
	b.WriteString("\n")

	stats := []string{
		statLine("completed", fmt.Sprintf("%d / %d ratios", len(m.points), m.total)),
		statLine("Ej/Ec", fmt.Sprintf("%.1f", m.latest.Ratio)),
		statLine("frequency", fmt.Sprintf("%.3f GHz", m.latest.Frequency)),
		statLine("anharmonicity", fmt.Sprintf("%.1f MHz", m.latest.Anharmonicity*1000)),
		statLine("dispersion", fmt.Sprintf("%.4g MHz", m.latest.Dispersion*1000)),
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if len(m.points) >= 2 {
		freqs := make([]float64, len(m.points))
		disps := make([]float64, len(m.points))
		for i, p := range m.points {
			freqs[i] = p.Frequency
			disps[i] = math.Log10(p.Dispersion * 1000)
		}

		b.WriteString(graphStyle.Render(asciigraph.Plot(freqs,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("qubit frequency f01 (GHz) vs Ej/Ec"),
		)))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(asciigraph.Plot(disps,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("log10 charge dispersion (MHz) vs Ej/Ec"),
		)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: cancel and quit"))
	b.WriteString("\n")

	return b.String()
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
