// Package controls presents the playback buttons.
package controls

import (
	"github.com/osa030/playaxis/internal/app/playback"
	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/render"
)

// Presenter dims the buttons that do nothing in the current state.
type Presenter struct {
	surface render.Surface
}

// NewPresenter creates a presenter drawing on surface.
func NewPresenter(surface render.Surface) *Presenter {
	return &Presenter{surface: surface}
}

var _ playback.Controls = (*Presenter)(nil)

// StateChanged updates button opacities for state.
func (p *Presenter) StateChanged(state playback.State) {
	switch state {
	case playback.StatePlaying:
		p.set(render.Dimmed, render.ElementPlay, render.ElementNext, render.ElementPrevious)
		p.set(render.Opaque, render.ElementStop, render.ElementPause)
	case playback.StatePaused:
		p.set(render.Dimmed, render.ElementPause)
		p.set(render.Opaque, render.ElementPlay, render.ElementStop, render.ElementNext, render.ElementPrevious)
	case playback.StateStopped:
		p.set(render.Dimmed, render.ElementPause, render.ElementStop, render.ElementNext, render.ElementPrevious)
		p.set(render.Opaque, render.ElementPlay)
	}
}

// Stepped dims previous at the first item and next at the last.
func (p *Presenter) Stepped(cursor, length int) {
	previous := render.Opaque
	if cursor == 0 {
		previous = render.Dimmed
	}
	next := render.Opaque
	if cursor == length-1 {
		next = render.Dimmed
	}
	p.surface.SetOpacity(render.ElementPrevious, previous)
	p.surface.SetOpacity(render.ElementNext, next)
}

// ApplyColors fills the buttons: one color per button when ShowAll is set,
// otherwise the picked color everywhere.
func (p *Presenter) ApplyColors(c settings.ColorSettings) {
	if !c.ShowAll {
		for _, id := range render.Controls {
			p.surface.SetFill(id, c.PickedColor)
		}
		return
	}

	p.surface.SetFill(render.ElementPlay, c.PlayColor)
	p.surface.SetFill(render.ElementPause, c.PauseColor)
	p.surface.SetFill(render.ElementStop, c.StopColor)
	p.surface.SetFill(render.ElementPrevious, c.PreviousColor)
	p.surface.SetFill(render.ElementNext, c.NextColor)
}

func (p *Presenter) set(opacity float64, ids ...string) {
	for _, id := range ids {
		p.surface.SetOpacity(id, opacity)
	}
}
