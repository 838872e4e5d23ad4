package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the play axis key bindings with built-in help text.
type KeyMap struct {
	Quit key.Binding

	Play     key.Binding
	Pause    key.Binding
	Stop     key.Binding
	Previous key.Binding
	Next     key.Binding

	Second     key.Binding
	TenSeconds key.Binding
	Minute     key.Binding
	Hour       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		Play: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),

		Second: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "second"),
		),
		TenSeconds: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "10 seconds"),
		),
		Minute: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "minute"),
		),
		Hour: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "hour"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Play, k.Pause, k.Stop, k.Previous, k.Next,
		k.Second, k.TenSeconds, k.Minute, k.Hour, k.Quit,
	}
}
