package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the host key bindings. Escape is absent on purpose: it is
// handled by the panel's document listener.
type KeyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Submit key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the bindings described in the help line.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "settings")),
		Next:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "prev field")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev option")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next option")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Submit, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Quit},
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Press, k.Submit, k.Reset},
	}
}

// setPanelOpen enables the bindings that only make sense while the panel is open.
func (k *KeyMap) setPanelOpen(open bool) {
	for _, b := range []*key.Binding{&k.Next, &k.Prev, &k.Left, &k.Right, &k.Press, &k.Submit, &k.Reset} {
		b.SetEnabled(open)
	}
}
