package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/toursim/internal/anim"
	"github.com/san-kum/toursim/internal/config"
	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/session"
)

const (
	canvasWidth  = 64
	canvasHeight = 20
)

type TickMsg time.Time

// uiState is written by session hooks and read by View. The tea loop is
// the only goroutine touching it: hooks fire synchronously inside Update.
type uiState struct {
	points    geom.PointSet
	frame     *anim.Frame
	weight    *float64
	animating bool
	costs     []float64
}

type Model struct {
	cfg    *config.Config
	sess   *session.Session
	ui     *uiState
	canvas *Canvas
	status string
}

func NewModel(cfg *config.Config, seed int64) Model {
	ui := &uiState{}
	sess := session.New(cfg, seed, session.Hooks{
		Draw: func(st session.State) {
			ui.points = st.Points
			ui.frame = st.Frame
			if st.Frame == nil {
				ui.costs = nil
				return
			}
			ui.costs = append(ui.costs, st.Frame.Cost)
		},
		WeightChanged: func(w *float64) { ui.weight = w },
		AnimatingChanged: func(on bool) { ui.animating = on },
	})

	m := Model{
		cfg:    cfg,
		sess:   sess,
		ui:     ui,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		status: "press 0-9 to start a tour",
	}
	sess.Generate()
	return m
}

// Run starts the interactive TUI.
func Run(cfg *config.Config, seed int64) error {
	p := tea.NewProgram(NewModel(cfg, seed))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.ui.animating {
			m.sess.Advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		m.sess.Generate()
		m.status = "press 0-9 to start a tour"
		return m, nil
	case "c":
		if m.ui.animating {
			m.sess.CancelReplay()
			m.status = "replay canceled"
		}
		return m, nil
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if m.ui.animating {
			// Activation during a replay is ignored, same as the session.
			return m, nil
		}
		id := int(key[0] - '0')
		if err := m.sess.ActivatePoint(id); err != nil {
			m.status = fmt.Sprintf("cannot start at %d: no such point", id)
			return m, nil
		}
		m.status = fmt.Sprintf("touring from point %d", id)
	}
	return m, nil
}

func (m Model) View() string {
	m.drawScene()

	var stats strings.Builder
	stats.WriteString(row("points", fmt.Sprintf("%d", len(m.ui.points))))
	stats.WriteString(row("state", stateLabel(m.ui)))
	if m.ui.frame != nil {
		stats.WriteString(row("step", fmt.Sprintf("%d", m.ui.frame.StepIndex+1)))
		stats.WriteString(row("cost", fmt.Sprintf("%.2f", m.ui.frame.Cost)))
	}
	if m.ui.weight != nil {
		stats.WriteString(row("weight", weightStyle.Render(fmt.Sprintf("%.2f", *m.ui.weight))))
	}
	if len(m.ui.costs) > 1 {
		graph := asciigraph.Plot(m.ui.costs,
			asciigraph.Height(8),
			asciigraph.Width(28),
			asciigraph.Caption("cumulative cost"),
		)
		stats.WriteString(graphStyle.Render(graph))
		stats.WriteByte('\n')
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	return headerStyle.Render("toursim — greedy tour playground") + "\n" +
		body + "\n" +
		helpStyle.Render(m.status+"  •  g: new points  c: cancel  q: quit")
}

func (m Model) drawScene() {
	m.canvas.Clear()

	if f := m.ui.frame; f != nil {
		for i := 1; i < len(f.Path); i++ {
			x1, y1 := m.cell(m.ui.points[f.Path[i-1]])
			x2, y2 := m.cell(m.ui.points[f.Path[i]])
			m.canvas.Line(x1, y1, x2, y2, '·')
		}
		hx1, hy1 := m.cell(m.ui.points[f.EdgeFrom])
		hx2, hy2 := m.cell(m.ui.points[f.EdgeTo])
		m.canvas.Line(hx1, hy1, hx2, hy2, '*')
	}

	for _, p := range m.ui.points {
		x, y := m.cell(p)
		m.canvas.Set(x, y, rune('0'+p.ID%10))
	}
}

// cell maps world coordinates onto the canvas grid.
func (m Model) cell(p geom.Point) (int, int) {
	x := int(p.X / m.cfg.Width * float64(m.canvas.Width-1))
	y := int(p.Y / m.cfg.Height * float64(m.canvas.Height-1))
	return x, y
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func stateLabel(ui *uiState) string {
	switch {
	case ui.animating:
		return "animating"
	case ui.weight != nil:
		return "complete"
	default:
		return "idle"
	}
}
