package clock

import (
	"sync/atomic"
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestClock_AfterFuncFires(t *testing.T) {
	mock := bclock.NewMock()
	c := Wrap(mock)

	var fired atomic.Bool
	c.AfterFunc(time.Second, func() { fired.Store(true) })

	mock.Add(500 * time.Millisecond)
	assert.False(t, fired.Load())

	mock.Add(500 * time.Millisecond)
	assert.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
}

func TestClock_StopPreventsCallback(t *testing.T) {
	mock := bclock.NewMock()
	c := Wrap(mock)

	var fired atomic.Bool
	timer := c.AfterFunc(time.Second, func() { fired.Store(true) })

	assert.True(t, timer.Stop())
	mock.Add(2 * time.Second)

	assert.Never(t, fired.Load, 50*time.Millisecond, 5*time.Millisecond)
}

func TestClock_Real(t *testing.T) {
	c := New()

	done := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
