// Package tui renders the play axis in a terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osa030/playaxis/internal/app/notification"
	"github.com/osa030/playaxis/internal/app/playback"
	"github.com/osa030/playaxis/internal/app/visual"
	"github.com/osa030/playaxis/internal/render"
)

// eventMsg carries one playback notification into the update loop.
type eventMsg struct {
	n *notification.Notification
}

// eventsClosedMsg is sent once the notification stream is closed.
type eventsClosedMsg struct{}

// Model is the Bubble Tea model of the play axis.
type Model struct {
	visual *visual.Visual
	scene  *render.Scene
	keys   KeyMap
	events <-chan *notification.Notification

	width int
	last  *playback.Event
}

// NewModel creates a model driving v and drawing scene, which must be the
// surface v was constructed with. Playback events arrive on events.
func NewModel(v *visual.Visual, scene *render.Scene, events <-chan *notification.Notification) *Model {
	return &Model{
		visual: v,
		scene:  scene,
		keys:   DefaultKeyMap(),
		events: events,
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan *notification.Notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{n: n}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case eventMsg:
		ev := msg.n.Event
		m.last = &ev
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.visual.Stop()
		return tea.Quit
	case key.Matches(msg, m.keys.Play):
		m.visual.Play()
	case key.Matches(msg, m.keys.Pause):
		m.visual.Pause()
	case key.Matches(msg, m.keys.Stop):
		m.visual.Stop()
	case key.Matches(msg, m.keys.Previous):
		m.visual.Previous()
	case key.Matches(msg, m.keys.Next):
		m.visual.Next()
	case key.Matches(msg, m.keys.Second):
		m.visual.SelectPreset(render.ElementSecond)
	case key.Matches(msg, m.keys.TenSeconds):
		m.visual.SelectPreset(render.ElementTenSeconds)
	case key.Matches(msg, m.keys.Minute):
		m.visual.SelectPreset(render.ElementMinute)
	case key.Matches(msg, m.keys.Hour):
		m.visual.SelectPreset(render.ElementHour)
	}
	return nil
}
