// Package render provides the declarative presentation surface the play axis draws on.
package render

import "sync"

// Element identifiers.
const (
	ElementPlay     = "play"
	ElementPause    = "pause"
	ElementStop     = "stop"
	ElementPrevious = "previous"
	ElementNext     = "next"

	ElementSecond     = "second"
	ElementTenSeconds = "tenSeconds"
	ElementMinute     = "minute"
	ElementHour       = "hour"

	ElementLabel = "label"
)

// Controls lists the playback buttons in display order.
var Controls = []string{ElementPlay, ElementPause, ElementStop, ElementPrevious, ElementNext}

// Opacity levels.
const (
	Dimmed = 0.3
	Opaque = 1.0
)

// Attribute names used with SetAttr.
const (
	AttrTextAnchor = "text-anchor"
	AttrFontSize   = "font-size"
)

// Surface receives visual-property updates.
// Implementations must be safe for concurrent use.
type Surface interface {
	SetOpacity(id string, opacity float64)
	SetFill(id string, color string)
	SetText(id string, text string)
	SetAttr(id string, name string, value string)
}

// Element is the current visual state of one element.
type Element struct {
	Opacity float64
	Fill    string
	Text    string
	Attrs   map[string]string
}

// Scene is an in-memory Surface holding the latest properties per element.
type Scene struct {
	mu       sync.RWMutex
	elements map[string]*Element
	version  uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		elements: make(map[string]*Element),
	}
}

var _ Surface = (*Scene)(nil)

func (s *Scene) SetOpacity(id string, opacity float64) {
	s.mutate(id, func(e *Element) { e.Opacity = opacity })
}

func (s *Scene) SetFill(id string, color string) {
	s.mutate(id, func(e *Element) { e.Fill = color })
}

func (s *Scene) SetText(id string, text string) {
	s.mutate(id, func(e *Element) { e.Text = text })
}

func (s *Scene) SetAttr(id string, name string, value string) {
	s.mutate(id, func(e *Element) { e.Attrs[name] = value })
}

// Element returns a snapshot of one element.
// Elements never written are fully opaque with no fill or text.
func (s *Scene) Element(id string) Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.elements[id]
	if !ok {
		return Element{Opacity: Opaque, Attrs: map[string]string{}}
	}

	attrs := make(map[string]string, len(e.Attrs))
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	return Element{
		Opacity: e.Opacity,
		Fill:    e.Fill,
		Text:    e.Text,
		Attrs:   attrs,
	}
}

// Version returns a counter incremented on every update.
func (s *Scene) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Scene) mutate(id string, fn func(e *Element)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.elements[id]
	if !ok {
		e = &Element{Opacity: Opaque, Attrs: make(map[string]string)}
		s.elements[id] = e
	}
	fn(e)
	s.version++
}
