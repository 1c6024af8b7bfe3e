package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vlist"
)

// Feed demo: entries arrive on a ticker and the window follows the tail.
// Scrolling up detaches from the tail; G reattaches.

type entry struct {
	Seq  int
	At   time.Time
	Text string
}

type tickMsg time.Time

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Follow key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Follow: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "follow tail")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	seqStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	barStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
)

type model struct {
	host      *vlist.Element
	win       *vlist.Window[entry]
	sched     *vlist.Scheduler
	entries   []entry
	following bool
	width     int
	height    int
}

func newModel() (*model, error) {
	host := vlist.NewElement()
	sched := vlist.NewScheduler()
	win, err := vlist.NewWindow[entry](vlist.ChildSlotOf(host), sched)
	if err != nil {
		return nil, err
	}

	rec := vlist.NewReconciler(host)
	win.OnOutput(func(seq []vlist.Keyed) { rec.Apply(seq) })

	m := &model{host: host, win: win, sched: sched, following: true}
	win.Update(m.config())
	return m, nil
}

// config builds one update's configuration. When following, each update
// carries an explicit scroll-to-tail request; otherwise the field is left
// unset and the engine keeps its position.
func (m *model) config() *vlist.Config[entry] {
	cfg := vlist.NewConfig[entry]().
		Items(m.entries).
		KeyFunc(func(e entry) any { return e.Seq }).
		RenderItem(renderEntry)
	if m.following && len(m.entries) > 0 {
		cfg.ScrollToIndex(len(m.entries) - 1)
	}
	return cfg
}

func renderEntry(e entry, index int) vlist.Component {
	return vlist.Text(fmt.Sprintf("%s %s %s",
		seqStyle.Render(fmt.Sprintf("%6d", e.Seq)),
		timeStyle.Render(e.At.Format("15:04:05")),
		e.Text))
}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.SetSize(msg.Width, msg.Height-1)

	case tickMsg:
		n := len(m.entries)
		m.entries = append(m.entries, entry{
			Seq:  n,
			At:   time.Time(msg),
			Text: fmt.Sprintf("feed event %d", n),
		})
		m.win.Update(m.config())
		cmd = tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.win.Bound() {
				m.following = false
				m.win.Engine().ScrollBy(-1)
			}
		case key.Matches(msg, keys.Down):
			if m.win.Bound() {
				m.win.Engine().ScrollBy(1)
			}
		case key.Matches(msg, keys.Follow):
			m.following = true
			m.win.Update(m.config())
		}
	}

	m.sched.Drain()
	return m, cmd
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	mode := "following"
	if !m.following {
		mode = "detached"
	}
	r := m.win.Range()
	bar := barStyle.Width(m.width).Render(
		fmt.Sprintf(" %d entries · showing %d-%d · %s · G follow · q quit",
			len(m.entries), r.First, r.Last, mode))
	return m.host.Render(m.width) + "\n" + bar
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
