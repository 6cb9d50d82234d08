package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/session"
)

const (
	width           = 64
	height          = 24
	historyCapacity = 240
	frameRate       = 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// tunable is a parameter the user can adjust from the keyboard. Bounds
// match the slider ranges of the interactive view.
type tunable struct {
	name     string
	min, max float64
	step     float64
	get      func(*orbit.Params) *float64
}

var tunables = []tunable{
	{"mass ratio", 0.1, 5, 0.1, func(p *orbit.Params) *float64 { return &p.MassRatio }},
	{"eccentricity", 0, orbit.MaxEccentricity, 0.05, func(p *orbit.Params) *float64 { return &p.Eccentricity }},
	{"speed", 0.1, 5, 0.1, func(p *orbit.Params) *float64 { return &p.Rate }},
}

type TickMsg time.Time

// Model is the live orbit view. Every parameter or frame change restarts
// the orbit and clears the trails.
type Model struct {
	sess        *session.Session
	initial     orbit.Params
	dt          float64
	canvas      *Canvas
	running     bool
	selected    int
	separations []float64
	showHelp    bool
	err         error
}

func NewModel(sess *session.Session, dt float64) Model {
	return Model{
		sess:        sess,
		initial:     sess.Params(),
		dt:          dt,
		canvas:      NewCanvas(width, height),
		running:     true,
		separations: make([]float64, 0, historyCapacity),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reconfigure(m.initial, m.sess.Frame())
		case "f":
			m.reconfigure(m.sess.Params(), m.sess.Frame().Next())
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.sess.Step(m.dt)
	st := m.sess.State()
	m.separations = append(m.separations, orbit.Separation(st.Theta, m.sess.Params()))
	if len(m.separations) > historyCapacity {
		m.separations = m.separations[1:]
	}
}

func (m *Model) reconfigure(p orbit.Params, f orbit.Frame) {
	m.err = m.sess.Configure(p, f)
	m.separations = m.separations[:0]
}

func (m *Model) adjust(dir float64) {
	t := tunables[m.selected]
	p := m.sess.Params()
	v := t.get(&p)
	*v = min(max(*v+dir*t.step, t.min), t.max)
	m.reconfigure(p, m.sess.Frame())
}

func (m Model) View() string {
	m.canvas.Clear()
	v := FitViewport(m.canvas, OrbitExtent(m.sess.Params()))
	DrawOrbit(m.canvas, v, m.sess.Positions(), m.sess.Trails())
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(Title.Render("BINARY ORBIT") + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING"))
	} else {
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString("  " + Subtle.Render(m.sess.Frame().String()) + "\n\n")

	if len(m.separations) > 1 {
		chart := asciigraph.Plot(m.separations, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Separation"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	st := m.sess.State()
	p := m.sess.Params()
	s.WriteString(MetricLabel.Render("Time") + MetricValue.Render(fmt.Sprintf("%.2f", st.Time)) + "\n")
	s.WriteString(MetricLabel.Render("Anomaly") + MetricValue.Render(fmt.Sprintf("%.2f rad", st.Theta)) + "\n")
	s.WriteString(MetricLabel.Render("Separation") + MetricValue.Render(fmt.Sprintf("%.3f", orbit.Separation(st.Theta, p))) + "\n")
	s.WriteString(MetricLabel.Render("Mu") + MetricValue.Render(fmt.Sprintf("%.3f", p.Mu())) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, t := range tunables {
		val := *t.get(&p)
		barWidth := 10
		filled := int((val - t.min) / (t.max - t.min) * float64(barWidth))
		filled = min(max(filled, 0), barWidth)
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-12s %s %.2f", t.name, bar, val)
		if i == m.selected {
			s.WriteString(Selected.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + Subtle.Render(line) + "\n")
		}
	}
	if m.err != nil {
		s.WriteString("\n" + StatusPaused.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + legend() + "\n")
	s.WriteString(KeyHint.Render("\nSP:Pause F:Frame R:Reset Q:Quit\nTab/↑↓:Tune T:Theme ?:Help"))
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + view
	}
	return view
}

func legend() string {
	parts := make([]string, 0, orbit.NumBodies)
	for _, id := range orbit.AllBodies() {
		style := lipgloss.NewStyle().Foreground(CurrentTheme.BodyColor(id))
		parts = append(parts, style.Render("● "+id.String()))
	}
	return strings.Join(parts, "  ")
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  F        - Cycle reference frame    ║
║  Tab      - Select parameter         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  R        - Reset orbit              ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
