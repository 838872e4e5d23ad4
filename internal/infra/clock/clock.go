// Package clock provides the wall clock used to schedule playback ticks.
package clock

import (
	"time"

	bclock "github.com/benbjohnson/clock"

	"github.com/osa030/playaxis/internal/app/playback"
)

// Clock adapts a benbjohnson clock to playback.Clock.
type Clock struct {
	c bclock.Clock
}

// New returns a clock backed by real time.
func New() *Clock {
	return &Clock{c: bclock.New()}
}

// Wrap adapts an existing clock, such as a mock.
func Wrap(c bclock.Clock) *Clock {
	return &Clock{c: c}
}

var _ playback.Clock = (*Clock)(nil)

// AfterFunc calls f in its own goroutine after d.
func (c *Clock) AfterFunc(d time.Duration, f func()) playback.Timer {
	return c.c.AfterFunc(d, f)
}
