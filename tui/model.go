// Package tui provides a Bubble Tea typewriter component.
//
// It is the non-blocking sibling of the typewriter.Writer: instead of
// sleeping on the calling goroutine, each character reveal is
// scheduled as a tick with that character's resolved delay, so the
// component composes with other Bubble Tea models.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	typewriter "github.com/averin-dn/go-typewriter"
	"github.com/averin-dn/go-typewriter/internal/wrap"
)

// revealMsg advances the reveal by one character.
type revealMsg struct{}

var (
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model reveals text one character at a time using per-character
// delays. Space or enter skips to the full text; q, esc, and ctrl+c
// quit.
type Model struct {
	delays typewriter.CharDelays
	runes  []rune
	shown  int
	done   bool

	width    int
	height   int
	viewport viewport.Model
	ready    bool
}

// New constructs a typewriter model for the given text.
func New(delays typewriter.CharDelays, text string) *Model {
	return &Model{delays: delays, runes: []rune(text)}
}

// Done reports whether the full text has been revealed.
func (m *Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if len(m.runes) == 0 {
		m.done = true
		return nil
	}
	return m.tickNext()
}

func (m *Model) tickNext() tea.Cmd {
	if m.shown >= len(m.runes) {
		return nil
	}
	delay := m.delays.DelayFor(m.runes[m.shown])
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := msg.Height - 1
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.syncViewport()
		return m, nil
	case revealMsg:
		// A tick scheduled before a skip may still arrive.
		if m.done {
			return m, nil
		}
		m.shown++
		if m.shown >= len(m.runes) {
			m.shown = len(m.runes)
			m.done = true
		}
		m.syncViewport()
		return m, m.tickNext()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeySpace, tea.KeyEnter:
			m.skip()
			return m, nil
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				return m, tea.Quit
			}
		}
	}
	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) skip() {
	m.shown = len(m.runes)
	m.done = true
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderText())
	m.viewport.GotoBottom()
}

func (m *Model) renderText() string {
	revealed := string(m.runes[:m.shown])
	if m.ready && m.width > 0 {
		revealed = wrap.String(revealed, m.width)
	}
	out := textStyle.Render(revealed)
	if !m.done {
		out += cursorStyle.Render("▌")
	}
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return m.renderText()
	}
	return m.viewport.View() + "\n" + m.renderFooter()
}

func (m *Model) renderFooter() string {
	if m.done {
		return footerStyle.Render("done · q to quit")
	}
	return footerStyle.Render("typing · space to skip · q to quit")
}
