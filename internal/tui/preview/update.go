package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrow):
			m.moveTo(m.viewport - StepPx)
		case key.Matches(msg, m.keys.Widen):
			m.moveTo(m.viewport + StepPx)
		case key.Matches(msg, m.keys.NarrowFast):
			m.moveTo(m.viewport - StepPx*fastFactor)
		case key.Matches(msg, m.keys.WidenFast):
			m.moveTo(m.viewport + StepPx*fastFactor)
		case key.Matches(msg, m.keys.Min):
			m.moveTo(m.settings.MinAnchor.Viewport)
		case key.Matches(msg, m.keys.Max):
			m.moveTo(m.settings.MaxAnchor.Viewport)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
