package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vlist"
)

type row struct {
	ID     int
	Name   string
	Status string
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "half page up")),
	PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "half page down")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusBar   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
)

type model struct {
	host   *vlist.Element
	win    *vlist.Window[row]
	sched  *vlist.Scheduler
	rows   []row
	width  int
	height int
}

func newModel() (*model, error) {
	rows := make([]row, 10000)
	for i := range rows {
		rows[i] = row{
			ID:     i,
			Name:   fmt.Sprintf("generated row %d", i),
			Status: []string{"active", "pending", "done"}[i%3],
		}
	}

	host := vlist.NewElement()
	sched := vlist.NewScheduler()
	win, err := vlist.NewWindow[row](vlist.ChildSlotOf(host), sched)
	if err != nil {
		return nil, err
	}

	rec := vlist.NewReconciler(host)
	win.OnOutput(func(seq []vlist.Keyed) { rec.Apply(seq) })

	m := &model{host: host, win: win, sched: sched, rows: rows}
	win.Update(m.config())
	return m, nil
}

func (m *model) config() *vlist.Config[row] {
	return vlist.NewConfig[row]().
		Items(m.rows).
		Layout(vlist.FixedHeight{Row: 1}).
		KeyFunc(func(r row) any { return r.ID }).
		RenderItem(renderRow)
}

func renderRow(r row, index int) vlist.Component {
	style := doneStyle
	if r.Status == "active" {
		style = activeStyle
	}
	line := fmt.Sprintf("%s  %-40s %s",
		idStyle.Render(fmt.Sprintf("%5d", r.ID)),
		r.Name,
		style.Render(r.Status))
	return vlist.Text(line)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Resizing the host drives the engine's viewport
		m.host.SetSize(msg.Width, msg.Height-1)

	case tea.MouseMsg:
		if !m.win.Bound() {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.win.Engine().ScrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.win.Engine().ScrollBy(3)
		}

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if !m.win.Bound() {
			break
		}
		engine := m.win.Engine()
		switch {
		case key.Matches(msg, keys.Down):
			engine.ScrollBy(1)
		case key.Matches(msg, keys.Up):
			engine.ScrollBy(-1)
		case key.Matches(msg, keys.PageDown):
			engine.ScrollBy(engine.ViewportHeight() / 2)
		case key.Matches(msg, keys.PageUp):
			engine.ScrollBy(-engine.ViewportHeight() / 2)
		case key.Matches(msg, keys.Top):
			engine.ScrollToIndex(0)
		case key.Matches(msg, keys.Bottom):
			engine.ScrollToIndex(len(m.rows) - 1)
		}
	}

	m.sched.Drain()
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	r := m.win.Range()
	status := statusBar.Width(m.width).Render(
		fmt.Sprintf(" %d items · showing %d-%d · j/k scroll · q quit",
			len(m.rows), r.First, r.Last))
	return m.host.Render(m.width) + "\n" + status
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
