package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/typepanel/internal/document"
	"github.com/alexisbeaulieu97/typepanel/internal/ui/components"
)

// Update handles Bubbletea messages. Every key and pointer press is fed to
// the document first, so the panel's listeners see it before the host does.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.sync(), nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.doc.Dispatch(document.Event{Kind: document.KeyDown, Key: msg.String()})
	m = m.sync()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Dispose()
		m.log.Info("host quitting")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
	case key.Matches(msg, m.keys.Left):
		if c, ok := m.buildForm(components.DefaultContext()).cyclers[m.focus]; ok {
			c.Prev()
		}
	case key.Matches(msg, m.keys.Right):
		if c, ok := m.buildForm(components.DefaultContext()).cyclers[m.focus]; ok {
			c.Next()
		}
	case key.Matches(msg, m.keys.Press):
		f := m.buildForm(components.DefaultContext())
		if b, ok := f.buttons[m.focus]; ok {
			b.Press()
		} else if c, ok := f.cyclers[m.focus]; ok {
			c.Next()
		}
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.Submit()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	}

	return m.sync(), nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	if ev.Action != tea.MouseActionPress || ev.IsWheel() {
		return m, nil
	}

	m.doc.Dispatch(document.Event{Kind: document.PointerDown, X: ev.X, Y: ev.Y})
	m = m.sync()

	switch {
	case toggleRect().Contains(ev.X, ev.Y):
		m.ctrl.Toggle()
	case m.ctrl.IsOpen() && m.panelRect().Contains(ev.X, ev.Y):
		rect := m.panelRect()
		// Skip the border column and the padding column.
		col := ev.X - rect.X - 2
		line := ev.Y - rect.Y - 1
		if target, ok := m.buildForm(components.DefaultContext()).Click(col, line); ok {
			m.focus = target
		}
	}

	return m.sync(), nil
}

// sync refreshes everything derived from the controller state.
func (m Model) sync() Model {
	m.keys.setPanelOpen(m.ctrl.IsOpen())
	m.mount()
	return m
}
