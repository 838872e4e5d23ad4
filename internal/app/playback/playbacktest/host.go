package playbacktest

import (
	"sync"

	"github.com/osa030/playaxis/internal/app/playback"
	"github.com/osa030/playaxis/internal/host"
)

// Token is a selection id backed by a string.
type Token string

// Key returns the token string.
func (t Token) Key() string { return string(t) }

// Selection records host selection calls.
type Selection struct {
	mu       sync.Mutex
	selected []string
	clears   int
	current  string
}

var _ host.SelectionManager = (*Selection)(nil)

func (s *Selection) Select(id host.SelectionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = append(s.selected, id.Key())
	s.current = id.Key()
}

func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	s.current = ""
}

// Selected returns the keys of every Select call, in order.
func (s *Selection) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Clears returns the number of Clear calls.
func (s *Selection) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// Current returns the key of the active selection, or "" when cleared.
func (s *Selection) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Captions records reported captions.
type Captions struct {
	mu    sync.Mutex
	texts []string
}

var _ playback.CaptionReporter = (*Captions)(nil)

func (c *Captions) Report(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = append(c.texts, text)
}

// All returns every reported caption, in order.
func (c *Captions) All() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.texts))
	copy(out, c.texts)
	return out
}

// Last returns the most recent caption.
func (c *Captions) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.texts) == 0 {
		return ""
	}
	return c.texts[len(c.texts)-1]
}
