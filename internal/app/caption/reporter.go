// Package caption provides the caption reporter of the play axis.
package caption

import (
	"sync"

	"github.com/osa030/playaxis/internal/render"
)

// Reporter writes the caption label when caption display is enabled.
type Reporter struct {
	mu      sync.Mutex
	surface render.Surface
	show    bool
	text    string
}

// NewReporter creates a reporter drawing on surface. Display is enabled.
func NewReporter(surface render.Surface) *Reporter {
	return &Reporter{
		surface: surface,
		show:    true,
	}
}

// Report sets the label to text if caption display is enabled.
// Otherwise the label keeps whatever was last rendered.
func (r *Reporter) Report(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.show {
		return
	}
	r.text = text
	r.surface.SetText(render.ElementLabel, text)
}

// SetShow enables or disables caption display.
func (r *Reporter) SetShow(show bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.show = show
}

// Text returns the last reported caption.
func (r *Reporter) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}
