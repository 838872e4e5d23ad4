// Package stepunit provides the step size selector of the play axis.
package stepunit

import (
	"sync"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/render"
)

// Preset is a named step size offered by the selector.
type Preset struct {
	Name    string // Display text
	Element string // Surface element of the preset
	Units   int    // Items advanced per step
}

// Presets lists the selectable granularities.
var Presets = []Preset{
	{Name: "Second", Element: render.ElementSecond, Units: 1},
	{Name: "10 seconds", Element: render.ElementTenSeconds, Units: 10},
	{Name: "Minute", Element: render.ElementMinute, Units: 60},
	{Name: "Hour", Element: render.ElementHour, Units: 60 * 60},
}

// StepSizer receives the selected step size.
type StepSizer interface {
	SetStepSize(units int)
}

// Selector tracks the step size and highlights the matching preset.
type Selector struct {
	mu      sync.Mutex
	target  StepSizer
	surface render.Surface
	units   int
}

// NewSelector creates a selector starting at one unit per step.
func NewSelector(target StepSizer, surface render.Surface) *Selector {
	s := &Selector{
		target:  target,
		surface: surface,
	}
	s.SetStepSize(Presets[0].Units)
	return s
}

// SetStepSize sets the step size. Only an exact preset match is highlighted.
// Playback in progress is rescheduled by the target. Non-positive sizes are
// ignored.
func (s *Selector) SetStepSize(units int) {
	if units <= 0 {
		zlog.Debug().Msgf("stepunit: ignoring step size %d", units)
		return
	}

	// The highlight, units and target change together.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.units = units
	for _, p := range Presets {
		opacity := render.Dimmed
		if p.Units == units {
			opacity = render.Opaque
		}
		s.surface.SetOpacity(p.Element, opacity)
	}

	s.target.SetStepSize(units)
}

// SelectPreset selects the preset with the given element id.
func (s *Selector) SelectPreset(element string) bool {
	for _, p := range Presets {
		if p.Element == element {
			s.SetStepSize(p.Units)
			return true
		}
	}
	return false
}

// StepSize returns the current step size.
func (s *Selector) StepSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units
}

// Active returns the preset matching the current step size.
func (s *Selector) Active() (Preset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range Presets {
		if p.Units == s.units {
			return p, true
		}
	}
	return Preset{}, false
}
