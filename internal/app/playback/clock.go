package playback

import "time"

// Clock schedules deferred callbacks.
type Clock interface {
	// AfterFunc calls f in its own goroutine once d has elapsed.
	// A non-positive d fires as soon as possible.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer.
	Stop() bool
}

// CaptionReporter receives the caption text for the current position.
type CaptionReporter interface {
	Report(text string)
}

// Controls is told about changes that affect the button presentation.
type Controls interface {
	StateChanged(state State)
	Stepped(cursor, length int)
}
