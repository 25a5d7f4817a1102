package clock

import (
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Provider is the clock used by loggers and writers created without an explicit clock.
var Provider = NewRealClock()

var useUTC atomic.Bool

// WithUseUTC switches every real clock to report UTC timestamps.
func WithUseUTC(enabled bool) {
	useUTC.Store(enabled)
}

//go:generate go run github.com/vektra/mockery/v2 --name Clock
type Clock interface {
	clockwork.Clock
}

type FakeClock interface {
	clockwork.FakeClock
}

func NewRealClock() Clock {
	return realClock{
		Clock: clockwork.NewRealClock(),
	}
}

func NewFakeClock() FakeClock {
	return clockwork.NewFakeClock()
}

func NewFakeClockAt(t time.Time) FakeClock {
	return clockwork.NewFakeClockAt(t)
}

type realClock struct {
	clockwork.Clock
}

func (c realClock) Now() time.Time {
	if useUTC.Load() {
		return c.Clock.Now().UTC()
	}

	return c.Clock.Now()
}
