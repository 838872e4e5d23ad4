package notification

import (
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/app/playback"
)

// ErrStreamFull is returned when a channel stream's buffer is full.
var ErrStreamFull = errors.New("notification stream full")

// ErrStreamClosed is returned when sending on a closed channel stream.
var ErrStreamClosed = errors.New("notification stream closed")

// ChanStream delivers notifications on a buffered channel.
type ChanStream struct {
	mu     sync.Mutex
	ch     chan *Notification
	closed bool
}

// NewChanStream creates a channel stream holding up to size notifications.
func NewChanStream(size int) *ChanStream {
	return &ChanStream{ch: make(chan *Notification, size)}
}

// Send never blocks; it drops the notification when the buffer is full.
func (s *ChanStream) Send(n *Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	select {
	case s.ch <- n:
		return nil
	default:
		return ErrStreamFull
	}
}

// C returns the receive side of the stream.
func (s *ChanStream) C() <-chan *Notification {
	return s.ch
}

// Close closes the channel. Further sends fail.
func (s *ChanStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// LogStream writes every notification to the global logger.
type LogStream struct{}

// Send logs selections at info level and everything else at debug.
func (LogStream) Send(n *Notification) error {
	ev := n.Event
	switch ev.Type {
	case playback.EventItemSelected:
		if ev.Item != nil {
			zlog.Info().Uint64("seq", n.SequenceNo).Int("cursor", ev.Cursor).Msgf("▶ %s", ev.Item.Label)
		}
	case playback.EventCycleCompleted:
		zlog.Info().Uint64("seq", n.SequenceNo).Msg("Cycle completed")
	default:
		zlog.Debug().Uint64("seq", n.SequenceNo).Msgf("%s: state=%s cursor=%d", ev.Type, ev.State, ev.Cursor)
	}
	return nil
}
