package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/playaxis/internal/app/playback"
)

type recordingStream struct {
	mu   sync.Mutex
	got  []*Notification
	fail error
}

func (s *recordingStream) Send(n *Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.fail
}

func (s *recordingStream) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

type blockingStream struct {
	release chan struct{}
}

func (s *blockingStream) Send(*Notification) error {
	<-s.release
	return nil
}

func TestManager_SubscribeUnsubscribe(t *testing.T) {
	m := NewManager()

	id1 := m.Subscribe(&recordingStream{})
	id2 := m.Subscribe(&recordingStream{})
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, m.SubscriberCount())

	m.Unsubscribe(id1)
	assert.Equal(t, 1, m.SubscriberCount())

	m.Unsubscribe("unknown")
	assert.Equal(t, 1, m.SubscriberCount())
}

func TestManager_BroadcastSequence(t *testing.T) {
	m := NewManager()
	a := &recordingStream{}
	b := &recordingStream{fail: errors.New("gone")}
	m.Subscribe(a)
	m.Subscribe(b)

	m.Broadcast(playback.Event{Type: playback.EventStateChanged, State: playback.StatePlaying})
	m.Broadcast(playback.Event{Type: playback.EventItemSelected, Cursor: 1})

	require.Equal(t, 2, a.count())
	assert.Equal(t, uint64(1), a.got[0].SequenceNo)
	assert.Equal(t, uint64(2), a.got[1].SequenceNo)
	assert.Equal(t, 1, a.got[1].Event.Cursor)
	assert.Equal(t, 2, b.count())
}

func TestManager_BroadcastDoesNotWaitForSlowSubscriber(t *testing.T) {
	m := NewManager()
	slow := &blockingStream{release: make(chan struct{})}
	defer close(slow.release)
	fast := &recordingStream{}
	m.Subscribe(slow)
	m.Subscribe(fast)

	start := time.Now()
	m.Broadcast(playback.Event{})

	assert.Less(t, time.Since(start), 2*sendTimeout)
	assert.Equal(t, 1, fast.count())
}

func TestManager_RunClosesStreams(t *testing.T) {
	m := NewManager()
	stream := NewChanStream(4)
	m.Subscribe(stream)

	events := make(chan playback.Event, 2)
	events <- playback.Event{Type: playback.EventCycleCompleted}
	close(events)

	require.NoError(t, m.Run(context.Background(), events))

	n, ok := <-stream.C()
	require.True(t, ok)
	assert.Equal(t, playback.EventCycleCompleted, n.Event.Type)

	_, ok = <-stream.C()
	assert.False(t, ok)
	assert.Equal(t, 0, m.SubscriberCount())
}

func TestManager_RunStopsOnContext(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, m.Run(ctx, make(chan playback.Event)))
}

func TestChanStream(t *testing.T) {
	s := NewChanStream(1)

	require.NoError(t, s.Send(&Notification{SequenceNo: 1}))
	assert.ErrorIs(t, s.Send(&Notification{SequenceNo: 2}), ErrStreamFull)

	s.Close()
	s.Close()
	assert.ErrorIs(t, s.Send(&Notification{}), ErrStreamClosed)

	n := <-s.C()
	assert.Equal(t, uint64(1), n.SequenceNo)
}

func TestLogStream(t *testing.T) {
	var s LogStream
	it := playback.Event{Type: playback.EventItemSelected}
	assert.NoError(t, s.Send(&Notification{Event: it}))
	assert.NoError(t, s.Send(&Notification{Event: playback.Event{Type: playback.EventCycleCompleted}}))
	assert.NoError(t, s.Send(&Notification{Event: playback.Event{Type: playback.EventStateChanged}}))
}
